// Package engine is the file lifecycle core: it moves, renames, copies, and
// deletes files across the watched folders and performs the matching status
// mutation in the same logical operation.
//
// Every operation orders its filesystem mutation strictly before its status
// mutation and treats precondition checks as advisory; the actual move or
// unlink call's error is authoritative because the watched folders are
// shared with an external pipeline. Failures are classified into the
// sentinel errors in errors.go, and every attempt lands one audit event.
package engine
