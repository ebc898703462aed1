package engine

import (
	"context"
	"fmt"
	"os"

	"shuttle/internal/filename"
	"shuttle/internal/status"
)

// Expand copies a multi-prefix file from the failed folder into the import
// folder once per derived prefix, then removes the original and swaps the
// status records in one store transaction.
//
// The N copies are not transactional on disk, so a copy failure rolls back
// every copy already made before returning; the original file and its record
// are untouched in that case. When all copies succeed but the original
// cannot be unlinked, the derived records are still inserted (the copies
// exist and must be tracked) and the call reports a partial failure instead
// of pretending the cleanup happened.
func (e *Engine) Expand(ctx context.Context, name, actor string) (int, error) {
	const operation = "expand"

	if err := e.checkConfigured(operation); err != nil {
		e.record(ctx, actor, operation, err.Error(), false)
		return 0, err
	}

	exp, err := filename.Expand(name)
	if err != nil {
		wrapped := fmt.Errorf("expand %s: %w", name, err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return 0, wrapped
	}

	release, err := e.acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	src := e.folders.Failed.Join(name)
	if _, err := os.Stat(src); err != nil {
		marker := classifyFS(err)
		wrapped := wrap(marker, operation, e.describeMoveFailure(marker, name), err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return 0, wrapped
	}

	made := make([]string, 0, len(exp.Derived))
	for _, derived := range exp.Derived {
		dst := e.folders.Import.Join(derived)
		if err := copyFile(src, dst); err != nil {
			wrapped := e.rollbackCopies(made, derived, err)
			e.record(ctx, actor, operation, wrapped.Error(), false)
			return 0, wrapped
		}
		made = append(made, dst)
	}

	unlinkErr := removeFile(src)

	files := make([]status.File, 0, len(exp.Derived))
	remark := fmt.Sprintf("Expanded from %s by %s", name, actor)
	for _, derived := range exp.Derived {
		files = append(files, status.NewFile(derived, status.StatusProcessing, e.folders.Import.Label, remark))
	}
	if err := e.store.ReplaceExpansion(ctx, name, unlinkErr == nil, files); err != nil {
		wrapped := fmt.Errorf("expand: %d copies created in %s but status insert failed: %w", len(made), e.folders.Import.Label, err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return 0, wrapped
	}

	if unlinkErr != nil {
		wrapped := wrap(
			ErrPartialFailure,
			operation,
			fmt.Sprintf("%d copies created in %s but original %s was not removed from %s", len(made), e.folders.Import.Label, name, e.folders.Failed.Label),
			unlinkErr,
		)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return len(made), wrapped
	}

	detail := fmt.Sprintf("expanded %s into %d files in %s", name, len(made), e.folders.Import.Label)
	e.record(ctx, actor, operation, detail, true)
	e.logger.Info("file expanded", "file", name, "count", len(made), "actor", actor)
	return len(made), nil
}

// rollbackCopies deletes the copies made before a failed copy. A rollback
// that itself fails leaves copies behind and is escalated to a partial
// failure so the operator knows reconciliation is needed.
func (e *Engine) rollbackCopies(made []string, failedCopy string, cause error) error {
	var rollbackFailed bool
	for _, path := range made {
		if err := os.Remove(path); err != nil {
			rollbackFailed = true
			e.logger.Warn("rollback of expansion copy failed", "path", path, "error", err)
		}
	}

	marker := classifyFS(cause)
	if rollbackFailed {
		return wrap(
			ErrPartialFailure,
			"expand",
			fmt.Sprintf("copy of %s to %s failed and some earlier copies could not be rolled back", failedCopy, e.folders.Import.Label),
			cause,
		)
	}
	return wrap(
		marker,
		"expand",
		fmt.Sprintf("copy of %s to %s failed; %d earlier copies rolled back", failedCopy, e.folders.Import.Label, len(made)),
		cause,
	)
}
