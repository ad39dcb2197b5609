// Package ingest merges normalized survey batches into the store.
//
// The merge is a set difference on normalized keys: records whose key
// already exists are counted as duplicates, the rest are appended in one
// atomic store call. Store failures abort the whole ingestion with no
// partial write.
package ingest
