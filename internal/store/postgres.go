package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmonteiro/fuel-data/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS fuel_prices (
	id              BIGSERIAL PRIMARY KEY,
	region_code     TEXT,
	state_code      TEXT,
	municipality    TEXT,
	seller_name     TEXT,
	seller_id       TEXT NOT NULL,
	product         TEXT NOT NULL,
	collection_date DATE NOT NULL,
	sale_price      DOUBLE PRECISION NOT NULL,
	purchase_price  DOUBLE PRECISION,
	unit            TEXT,
	brand           TEXT,
	UNIQUE (seller_id, collection_date, product)
)`

// Postgres stores records in a fuel_prices table. The unique constraint on
// the key triple backs up the merger: a concurrent ingestion racing on the
// same key fails its transaction instead of inserting twice.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres wraps an existing connection pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// InitSchema creates the fuel_prices table if it does not exist.
func (s *Postgres) InitSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create fuel_prices table: %w", err)
	}
	return nil
}

// ExistingKeys returns the normalized keys of all stored records.
func (s *Postgres) ExistingKeys(ctx context.Context) (map[model.Key]struct{}, error) {
	rows, err := s.db.Query(ctx, `SELECT seller_id, collection_date, product FROM fuel_prices`)
	if err != nil {
		return nil, fmt.Errorf("query existing keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[model.Key]struct{})
	for rows.Next() {
		var (
			sellerID string
			date     time.Time
			product  string
		)
		if err := rows.Scan(&sellerID, &date, &product); err != nil {
			return nil, fmt.Errorf("scan key row: %w", err)
		}
		keys[model.NewKey(sellerID, date, product)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read existing keys: %w", err)
	}
	return keys, nil
}

// Append inserts records inside a single transaction.
func (s *Postgres) Append(ctx context.Context, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO fuel_prices
				(region_code, state_code, municipality, seller_name, seller_id,
				 product, collection_date, sale_price, purchase_price, unit, brand)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, r.RegionCode, r.StateCode, r.Municipality, r.SellerName, r.SellerID,
			r.Product, r.CollectionDate, r.SalePrice, r.PurchasePrice, r.Unit, r.Brand)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("insert record: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close insert batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit append transaction: %w", err)
	}
	return nil
}

// AllRecords returns every stored record in insertion order.
func (s *Postgres) AllRecords(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT region_code, state_code, municipality, seller_name, seller_id,
		       product, collection_date, sale_price, purchase_price, unit, brand
		FROM fuel_prices
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(
			&r.RegionCode, &r.StateCode, &r.Municipality, &r.SellerName, &r.SellerID,
			&r.Product, &r.CollectionDate, &r.SalePrice, &r.PurchasePrice, &r.Unit, &r.Brand,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.CollectionDate = r.CollectionDate.UTC()
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}
