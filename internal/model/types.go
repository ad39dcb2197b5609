package model

import (
	"strings"
	"time"
)

// DateLayout is the canonical textual form of a collection date.
const DateLayout = "2006-01-02"

// Record represents one fuel-price observation from a survey file.
type Record struct {
	RegionCode     string    // Region abbreviation (e.g., "SE")
	StateCode      string    // State abbreviation (e.g., "SP")
	Municipality   string    // Municipality name
	SellerName     string    // Station trading name
	SellerID       string    // Station CNPJ, trimmed (key field)
	Product        string    // Fuel product, trimmed (key field)
	CollectionDate time.Time // Survey date, UTC midnight (key field)
	SalePrice      float64   // Pump price, required
	PurchasePrice  *float64  // Wholesale price, nil when absent
	Unit           string    // Price unit (e.g., "R$ / litro")
	Brand          string    // Station brand flag
}

// Key identifies a unique observation. Two records with equal keys are the
// same observation and must never both exist in the store.
//
// The date is carried in canonical textual form so Key is comparable and
// insensitive to time.Time internals (monotonic clock, location).
type Key struct {
	SellerID string
	Date     string // DateLayout form
	Product  string
}

// Key derives the normalized identity key of a record.
func (r Record) Key() Key {
	return NewKey(r.SellerID, r.CollectionDate, r.Product)
}

// NewKey builds a normalized key: seller and product trimmed, date reduced
// to its calendar value regardless of the form it arrived in.
func NewKey(sellerID string, date time.Time, product string) Key {
	return Key{
		SellerID: strings.TrimSpace(sellerID),
		Date:     date.UTC().Format(DateLayout),
		Product:  strings.TrimSpace(product),
	}
}
