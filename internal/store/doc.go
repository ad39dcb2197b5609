// Package store persists the deduplicated price dataset.
//
// The Store interface is the merge/aggregation boundary: the merger reads
// existing keys and appends accepted records, the aggregation engine scans
// the full dataset. Postgres is the production backend; Memory backs tests
// and dry runs.
package store
