// Package folders resolves the configured watched directories and probes
// them for write access, classifying failures into operator-readable reasons
// that name the affected folder.
package folders
