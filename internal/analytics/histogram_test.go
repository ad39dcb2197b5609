package analytics

import (
	"testing"
	"time"

	"github.com/rmonteiro/fuel-data/internal/model"
)

func priceRec(product string, price float64) model.Record {
	return model.Record{
		Product:        product,
		CollectionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SalePrice:      price,
	}
}

func TestComputeDistribution_ModeProduct(t *testing.T) {
	records := []model.Record{
		priceRec("ETANOL", 3.80),
		priceRec("GASOLINA", 5.00),
		priceRec("GASOLINA", 5.20),
		priceRec("ETANOL", 3.90),
		priceRec("GASOLINA", 5.40),
	}

	dist := computeDistribution(records, 30)
	if dist.Product != "GASOLINA" {
		t.Errorf("Product = %q, want GASOLINA", dist.Product)
	}
	if dist.Sample != 3 {
		t.Errorf("Sample = %d, want 3", dist.Sample)
	}

	total := 0
	for _, b := range dist.Bins {
		total += b.Count
	}
	if total != 3 {
		t.Errorf("bin counts sum to %d, want 3", total)
	}
}

func TestComputeDistribution_TieBrokenByFirstOccurrence(t *testing.T) {
	records := []model.Record{
		priceRec("ETANOL", 3.80),
		priceRec("GASOLINA", 5.00),
		priceRec("GASOLINA", 5.20),
		priceRec("ETANOL", 3.90),
	}

	dist := computeDistribution(records, 30)
	if dist.Product != "ETANOL" {
		t.Errorf("Product = %q, want ETANOL (first occurrence wins the tie)", dist.Product)
	}
}

func TestComputeDistribution_SingleObservation(t *testing.T) {
	dist := computeDistribution([]model.Record{priceRec("GNV", 4.20)}, 30)
	if dist.Product != "GNV" {
		t.Errorf("Product = %q, want GNV", dist.Product)
	}
	if len(dist.Bins) != 1 {
		t.Fatalf("len(Bins) = %d, want 1 for a degenerate sample", len(dist.Bins))
	}
	if dist.Bins[0].Count != 1 || dist.Bins[0].Low != 4.20 || dist.Bins[0].High != 4.20 {
		t.Errorf("bin = %+v, want all mass at 4.20", dist.Bins[0])
	}
}

func TestHistogram_BinLayout(t *testing.T) {
	// 0..29 into 30 bins of width ~0.9667; every bin gets exactly one value.
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(i)
	}

	bins := histogram(values, 30)
	if len(bins) != 30 {
		t.Fatalf("len(bins) = %d, want 30", len(bins))
	}
	if bins[0].Low != 0 || bins[29].High != 29 {
		t.Errorf("range = [%v, %v], want [0, 29]", bins[0].Low, bins[29].High)
	}
	for i, b := range bins {
		if b.Count != 1 {
			t.Errorf("bins[%d].Count = %d, want 1", i, b.Count)
		}
	}
}

func TestHistogram_MaxValueInLastBin(t *testing.T) {
	bins := histogram([]float64{1, 2, 3}, 2)
	if len(bins) != 2 {
		t.Fatalf("len(bins) = %d, want 2", len(bins))
	}
	if bins[1].Count != 2 {
		t.Errorf("last bin count = %d, want 2 (2 and the max)", bins[1].Count)
	}
	if bins[0].Count != 1 {
		t.Errorf("first bin count = %d, want 1", bins[0].Count)
	}
}
