package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrConfiguration marks operations refused because a watched path is unset.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks operations whose expected file was absent from its folder.
	ErrNotFound = errors.New("not found")
	// ErrPermission marks filesystem mutations blocked by permissions.
	ErrPermission = errors.New("permission denied")
	// ErrConflict marks renames whose target already exists.
	ErrConflict = errors.New("conflict")
	// ErrPartialFailure marks operations that mutated some but not all required
	// state; manual reconciliation may be needed.
	ErrPartialFailure = errors.New("partial failure")
	// ErrIO marks filesystem failures with no more specific classification.
	ErrIO = errors.New("i/o error")
)

// wrap builds an error message with operation context while tagging it with
// the provided marker for classification at the boundary.
func wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// classifyFS maps a filesystem error to the matching sentinel. The actual
// call's error is authoritative; precondition stats are only advisory.
func classifyFS(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, fs.ErrExist):
		return ErrConflict
	default:
		return ErrIO
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "lifecycle failure"
	}
	return strings.Join(parts, ": ")
}
