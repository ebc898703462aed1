// Package filename parses the structured multi-prefix filename format used
// by expansion: a four-segment stem whose first segment decomposes into
// two-character prefix pairs, each fanning out into its own file.
package filename
