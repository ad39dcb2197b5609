package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rmonteiro/fuel-data/internal/model"
	"github.com/rmonteiro/fuel-data/internal/store"
)

func TestEngine_EmptyDataset(t *testing.T) {
	e := NewEngine(store.NewMemory(), Config{})

	_, err := e.Dashboard(context.Background())
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("Dashboard() error = %v, want ErrEmptyDataset", err)
	}
}

func TestEngine_Dashboard(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	records := []model.Record{
		{SellerID: "A", StateCode: "SP", Product: "GASOLINA", CollectionDate: day(1), SalePrice: 5.00},
		{SellerID: "B", StateCode: "RJ", Product: "GASOLINA", CollectionDate: day(2), SalePrice: 6.00},
		{SellerID: "C", StateCode: "SP", Product: "ETANOL", CollectionDate: day(3), SalePrice: 4.00},
	}
	if err := s.Append(ctx, records); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	e := NewEngine(s, Config{})
	d, err := e.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if d.KPI.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", d.KPI.TotalRecords)
	}
	if !d.KPI.FirstDate.Equal(day(1)) || !d.KPI.LastDate.Equal(day(3)) {
		t.Errorf("date range = %v..%v, want %v..%v", d.KPI.FirstDate, d.KPI.LastDate, day(1), day(3))
	}
	if d.KPI.MeanSalePrice != 5.00 {
		t.Errorf("MeanSalePrice = %v, want 5.00", d.KPI.MeanSalePrice)
	}

	if len(d.Series) != 2 {
		t.Errorf("len(Series) = %d, want 2", len(d.Series))
	}
	if d.Series[0].Product != "GASOLINA" {
		t.Errorf("Series[0].Product = %q, want GASOLINA (most records)", d.Series[0].Product)
	}

	if len(d.Geography.Cheapest) != 2 {
		t.Errorf("len(Cheapest) = %d, want 2 (two states)", len(d.Geography.Cheapest))
	}
	// SP mean 4.50 < RJ mean 6.00.
	if d.Geography.Cheapest[0].StateCode != "SP" {
		t.Errorf("Cheapest[0] = %q, want SP", d.Geography.Cheapest[0].StateCode)
	}

	if d.Distribution.Product != "GASOLINA" {
		t.Errorf("Distribution.Product = %q, want GASOLINA", d.Distribution.Product)
	}
	if d.Distribution.Sample != 2 {
		t.Errorf("Distribution.Sample = %d, want 2", d.Distribution.Sample)
	}
}

type brokenStore struct{}

func (brokenStore) ExistingKeys(ctx context.Context) (map[model.Key]struct{}, error) {
	return nil, errors.New("unavailable")
}

func (brokenStore) Append(ctx context.Context, records []model.Record) error {
	return errors.New("unavailable")
}

func (brokenStore) AllRecords(ctx context.Context) ([]model.Record, error) {
	return nil, errors.New("unavailable")
}

func TestEngine_StoreFailure(t *testing.T) {
	e := NewEngine(brokenStore{}, Config{})

	_, err := e.Dashboard(context.Background())
	if err == nil {
		t.Fatal("Dashboard() with failing store: expected error, got nil")
	}
	if errors.Is(err, ErrEmptyDataset) {
		t.Fatal("store failure must not be reported as an empty dataset")
	}
}
