// Package audit appends one record per attempted lifecycle operation to the
// status database. Recording is best-effort from the engine's perspective; a
// failed audit write never aborts the operation it describes.
package audit
