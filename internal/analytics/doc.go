// Package analytics derives the dashboard views from the accumulated
// dataset.
//
// Four independent views are computed per call: headline KPIs, a smoothed
// per-product time series, a state price ranking, and a price histogram of
// the most common product. Each call scans the full dataset; the system's
// scale makes that acceptable.
package analytics
