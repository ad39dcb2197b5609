package analytics

import (
	"github.com/rmonteiro/fuel-data/internal/model"
)

// HistogramBin is one bin of the price distribution: [Low, High), the last
// bin closing at High inclusive.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Distribution is the price histogram of the most common product.
type Distribution struct {
	Product string         `json:"product"`
	Sample  int            `json:"sample"` // number of prices binned
	Bins    []HistogramBin `json:"bins"`
}

// computeDistribution finds the mode product (ties broken by first
// occurrence in record order) and bins its sale prices.
func computeDistribution(records []model.Record, bins int) Distribution {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, r := range records {
		if _, ok := counts[r.Product]; !ok {
			firstSeen[r.Product] = i
		}
		counts[r.Product]++
	}

	var mode string
	best := -1
	for p, c := range counts {
		if c > best || (c == best && firstSeen[p] < firstSeen[mode]) {
			mode, best = p, c
		}
	}

	var prices []float64
	for _, r := range records {
		if r.Product == mode {
			prices = append(prices, r.SalePrice)
		}
	}

	return Distribution{
		Product: mode,
		Sample:  len(prices),
		Bins:    histogram(prices, bins),
	}
}

// histogram bins values into equal-width bins spanning [min, max]. A
// degenerate sample (all values equal) collapses to a single bin.
func histogram(values []float64, bins int) []HistogramBin {
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []HistogramBin{{Low: lo, High: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
