package analytics

import (
	"sort"
	"time"

	"github.com/rmonteiro/fuel-data/internal/model"
)

// SeriesPoint is one date on a product's price curve.
type SeriesPoint struct {
	Date     time.Time `json:"date"`
	Mean     float64   `json:"mean"`
	Smoothed float64   `json:"smoothed"`
}

// ProductSeries is the smoothed price curve of one product.
type ProductSeries struct {
	Product string        `json:"product"`
	Count   int           `json:"count"` // record count backing the series
	Points  []SeriesPoint `json:"points"`
}

// computeSeries builds one smoothed time series per product for the
// topProducts products with the most records. Products tied on count are
// ordered by name so the selection is deterministic.
func computeSeries(records []model.Record, topProducts, window int) []ProductSeries {
	type group struct {
		sum   float64
		count int
	}

	// (product, date) -> mean inputs; product -> total record count.
	groups := make(map[string]map[time.Time]*group)
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Product]++
		dates, ok := groups[r.Product]
		if !ok {
			dates = make(map[time.Time]*group)
			groups[r.Product] = dates
		}
		g, ok := dates[r.CollectionDate]
		if !ok {
			g = &group{}
			dates[r.CollectionDate] = g
		}
		g.sum += r.SalePrice
		g.count++
	}

	products := make([]string, 0, len(counts))
	for p := range counts {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if counts[products[i]] != counts[products[j]] {
			return counts[products[i]] > counts[products[j]]
		}
		return products[i] < products[j]
	})
	if len(products) > topProducts {
		products = products[:topProducts]
	}

	series := make([]ProductSeries, 0, len(products))
	for _, p := range products {
		dates := groups[p]
		ordered := make([]time.Time, 0, len(dates))
		for d := range dates {
			ordered = append(ordered, d)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

		points := make([]SeriesPoint, len(ordered))
		means := make([]float64, len(ordered))
		for i, d := range ordered {
			g := dates[d]
			means[i] = g.sum / float64(g.count)
			points[i] = SeriesPoint{Date: d, Mean: means[i]}
		}
		for i, v := range rollingMean(means, window) {
			points[i].Smoothed = v
		}

		series = append(series, ProductSeries{Product: p, Count: counts[p], Points: points})
	}
	return series
}

// rollingMean computes a trailing moving average with a shrinking window:
// position i averages samples max(0, i-window+1) .. i, so the result is
// defined from the first sample on.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		n := window
		if i+1 < window {
			n = i + 1
		} else if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(n)
	}
	return out
}
