package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rmonteiro/fuel-data/internal/model"
	"github.com/rmonteiro/fuel-data/internal/normalize"
	"github.com/rmonteiro/fuel-data/internal/store"
)

// Report summarizes one ingestion.
//
// New + Duplicate equals the number of valid records in the batch;
// New + Duplicate + Rejected + Empty + Collapsed equals the file's total
// row count.
type Report struct {
	BatchID   uuid.UUID `json:"batch_id"`
	New       int       `json:"new"`
	Duplicate int       `json:"duplicate"`
	Rejected  int       `json:"rejected"`
	Empty     int       `json:"empty"`
	Collapsed int       `json:"collapsed"`
	Total     int       `json:"total"`
}

// Merger partitions normalized batches against the store's existing keys
// and appends only genuinely new records.
type Merger struct {
	store  store.Store
	logger *slog.Logger
}

// NewMerger creates a Merger writing to the given store.
func NewMerger(s store.Store, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{store: s, logger: logger}
}

// Merge classifies the batch against existing keys and appends the new
// records as a unit. On store failure no state changes and the error is
// returned wrapped.
func (m *Merger) Merge(ctx context.Context, batch *normalize.Batch) (Report, error) {
	report := Report{
		BatchID:   uuid.New(),
		Rejected:  batch.Rejected,
		Empty:     batch.Empty,
		Collapsed: batch.Collapsed,
		Total:     batch.Total,
	}

	existing, err := m.store.ExistingKeys(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load existing keys: %w", err)
	}

	fresh := make([]model.Record, 0, len(batch.Records))
	for _, r := range batch.Records {
		if _, dup := existing[r.Key()]; dup {
			report.Duplicate++
			continue
		}
		fresh = append(fresh, r)
	}

	if err := m.store.Append(ctx, fresh); err != nil {
		return Report{}, fmt.Errorf("append %d records: %w", len(fresh), err)
	}
	report.New = len(fresh)

	m.logger.Info("batch merged",
		"batch_id", report.BatchID,
		"new", report.New,
		"duplicate", report.Duplicate,
		"rejected", report.Rejected,
		"empty", report.Empty,
	)
	return report, nil
}

// IngestFile normalizes one survey file and merges it into the store.
func (m *Merger) IngestFile(ctx context.Context, path string) (Report, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()

	batch, err := normalize.Read(f)
	if err != nil {
		return Report{}, fmt.Errorf("normalize %s: %w", path, err)
	}

	report, err := m.Merge(ctx, batch)
	if err != nil {
		return Report{}, err
	}

	m.logger.Info("file ingested",
		"path", path,
		"rows", report.Total,
		"duration", time.Since(start),
	)
	return report, nil
}
