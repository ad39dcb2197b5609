// Package model defines shared data types used across the fuel price analyzer.
//
// Conventions:
//   - Prices: float64 in BRL (source files use comma decimal separators)
//   - Dates: time.Time at UTC midnight (survey rows carry no time component)
//   - IDs: CNPJ strings for sellers, uuid.UUID for ingestion batches
package model
