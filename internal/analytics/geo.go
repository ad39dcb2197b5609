package analytics

import (
	"sort"

	"github.com/rmonteiro/fuel-data/internal/model"
)

// StateMean is the mean sale price of one state.
type StateMean struct {
	StateCode     string  `json:"state_code"`
	MeanSalePrice float64 `json:"mean_sale_price"`
}

// Geography ranks states by mean sale price. Cheapest is ascending,
// MostExpensive is descending (most expensive first). Fewer distinct
// states than the rank size yield shorter lists.
type Geography struct {
	Cheapest      []StateMean `json:"cheapest"`
	MostExpensive []StateMean `json:"most_expensive"`
}

func computeGeography(records []model.Record, rankSize int) Geography {
	type acc struct {
		sum   float64
		count int
	}
	states := make(map[string]*acc)
	for _, r := range records {
		a, ok := states[r.StateCode]
		if !ok {
			a = &acc{}
			states[r.StateCode] = a
		}
		a.sum += r.SalePrice
		a.count++
	}

	means := make([]StateMean, 0, len(states))
	for code, a := range states {
		means = append(means, StateMean{StateCode: code, MeanSalePrice: a.sum / float64(a.count)})
	}
	sort.Slice(means, func(i, j int) bool {
		if means[i].MeanSalePrice != means[j].MeanSalePrice {
			return means[i].MeanSalePrice < means[j].MeanSalePrice
		}
		return means[i].StateCode < means[j].StateCode
	})

	n := rankSize
	if n > len(means) {
		n = len(means)
	}

	geo := Geography{
		Cheapest:      make([]StateMean, n),
		MostExpensive: make([]StateMean, n),
	}
	copy(geo.Cheapest, means[:n])
	for i := 0; i < n; i++ {
		geo.MostExpensive[i] = means[len(means)-1-i]
	}
	return geo
}
