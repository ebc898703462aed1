// Package status persists file lifecycle records in SQLite and exposes the
// keyed upsert, bulk upsert, delete, and ordered listing operations the
// lifecycle engine builds on.
//
// A record's name is the primary key and matches an on-disk filename in one
// of the watched folders. Bulk mutations run in a single transaction so
// partial application never happens; uniqueness conflicts replace the prior
// row rather than erroring. The database also hosts the audit_events table
// consumed by the audit package.
package status
