package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rmonteiro/fuel-data/internal/model"
	"github.com/rmonteiro/fuel-data/internal/store"
)

// ErrEmptyDataset is returned when aggregation is requested on an empty
// store. Callers surface it as an explicit "no data yet" state rather
// than rendering degenerate statistics.
var ErrEmptyDataset = errors.New("dataset is empty")

// Config holds aggregation parameters.
type Config struct {
	Window      int // moving-average window (samples)
	TopProducts int // number of product series on the dashboard
	Bins        int // histogram bin count
	RankSize    int // states per geographic ranking list
}

// DefaultConfig returns the parameters the original dashboard uses.
func DefaultConfig() Config {
	return Config{
		Window:      30,
		TopProducts: 4,
		Bins:        30,
		RankSize:    5,
	}
}

// KPI holds the headline numbers.
type KPI struct {
	TotalRecords  int       `json:"total_records"`
	FirstDate     time.Time `json:"first_date"`
	LastDate      time.Time `json:"last_date"`
	MeanSalePrice float64   `json:"mean_sale_price"`
}

// Dashboard bundles the four analytical views.
type Dashboard struct {
	KPI          KPI             `json:"kpi"`
	Series       []ProductSeries `json:"series"`
	Geography    Geography       `json:"geography"`
	Distribution Distribution    `json:"distribution"`
}

// Engine computes dashboard views from the store.
type Engine struct {
	store store.Store
	cfg   Config
}

// NewEngine creates an Engine. Zero config fields fall back to defaults.
func NewEngine(s store.Store, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.TopProducts <= 0 {
		cfg.TopProducts = def.TopProducts
	}
	if cfg.Bins <= 0 {
		cfg.Bins = def.Bins
	}
	if cfg.RankSize <= 0 {
		cfg.RankSize = def.RankSize
	}
	return &Engine{store: s, cfg: cfg}
}

// Dashboard scans the current dataset and computes all views. An empty
// store yields ErrEmptyDataset.
//
// The views are independent reads of the same immutable snapshot, so they
// run concurrently.
func (e *Engine) Dashboard(ctx context.Context) (*Dashboard, error) {
	records, err := e.store.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	var d Dashboard
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.KPI = computeKPI(records)
		return nil
	})
	g.Go(func() error {
		d.Series = computeSeries(records, e.cfg.TopProducts, e.cfg.Window)
		return nil
	})
	g.Go(func() error {
		d.Geography = computeGeography(records, e.cfg.RankSize)
		return nil
	})
	g.Go(func() error {
		d.Distribution = computeDistribution(records, e.cfg.Bins)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &d, nil
}

func computeKPI(records []model.Record) KPI {
	kpi := KPI{
		TotalRecords: len(records),
		FirstDate:    records[0].CollectionDate,
		LastDate:     records[0].CollectionDate,
	}

	var sum float64
	for _, r := range records {
		sum += r.SalePrice
		if r.CollectionDate.Before(kpi.FirstDate) {
			kpi.FirstDate = r.CollectionDate
		}
		if r.CollectionDate.After(kpi.LastDate) {
			kpi.LastDate = r.CollectionDate
		}
	}
	kpi.MeanSalePrice = sum / float64(len(records))
	return kpi
}
