// Package database provides connection pool management for PostgreSQL.
//
// The analyzer keeps the whole deduplicated price dataset in a single
// PostgreSQL database; callers own the pool lifecycle (connect at startup,
// close on shutdown).
package database
