// Package sqlite provides the SQLite-backed match cache.
//
// The cache is a single table of external match candidates keyed by
// (person id, source name, external id). It is created on first access
// via embedded migrations and uses WAL mode so concurrent upserts from
// the cross-reference fan-out do not block each other.
package sqlite
