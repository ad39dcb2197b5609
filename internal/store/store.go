package store

import (
	"context"

	"github.com/rmonteiro/fuel-data/internal/model"
)

// Store is an append-only keyed collection of records.
//
// Append is atomic: either every record is persisted or none are. Records
// are never mutated or deleted through this interface.
type Store interface {
	// ExistingKeys returns the normalized keys of all stored records.
	ExistingKeys(ctx context.Context) (map[model.Key]struct{}, error)

	// Append persists the given records as a unit.
	Append(ctx context.Context, records []model.Record) error

	// AllRecords returns every stored record in insertion order.
	AllRecords(ctx context.Context) ([]model.Record, error)
}
