// Package sqlite provides the SQLite-backed inventory store. The store owns
// the product schema, applies embedded migrations on startup and exposes the
// read-only query surface the answer pipeline needs.
package sqlite
