package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"shuttle/internal/status"
)

// Retry moves a file from the failed folder back into the import folder and
// marks its record as processing again. A missing record is left missing;
// retry never invents tracking state.
func (e *Engine) Retry(ctx context.Context, name, actor string) error {
	const operation = "retry"

	if err := e.checkConfigured(operation); err != nil {
		e.record(ctx, actor, operation, err.Error(), false)
		return err
	}
	release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	src := e.folders.Failed.Join(name)
	dst := e.folders.Import.Join(name)
	if err := os.Rename(src, dst); err != nil {
		marker := classifyFS(err)
		wrapped := wrap(marker, operation, e.describeMoveFailure(marker, name), err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	}

	remark := fmt.Sprintf("Retried by %s", actor)
	if _, err := e.store.UpdateFields(ctx, name, status.StatusProcessing, remark); err != nil {
		wrapped := fmt.Errorf("retry: %s moved to %s but status update failed: %w", name, e.folders.Import.Label, err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	}

	detail := fmt.Sprintf("moved %s from %s to %s", name, e.folders.Failed.Label, e.folders.Import.Label)
	e.record(ctx, actor, operation, detail, true)
	e.logger.Info("file retried", "file", name, "actor", actor)
	return nil
}

// Rename moves failed/oldName to import/newName under a fresh identity. The
// target is checked first so a conflict is reported before anything moves.
func (e *Engine) Rename(ctx context.Context, oldName, newName, actor string) error {
	const operation = "rename"

	if err := e.checkConfigured(operation); err != nil {
		e.record(ctx, actor, operation, err.Error(), false)
		return err
	}
	release, err := e.acquire()
	if err != nil {
		return err
	}
	defer release()

	dst := e.folders.Import.Join(newName)
	if _, err := os.Lstat(dst); err == nil {
		wrapped := wrap(ErrConflict, operation, fmt.Sprintf("%s already exists in %s", newName, e.folders.Import.Label), nil)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	} else if !errors.Is(err, fs.ErrNotExist) {
		wrapped := wrap(classifyFS(err), operation, fmt.Sprintf("checking %s in %s", newName, e.folders.Import.Label), err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	}

	src := e.folders.Failed.Join(oldName)
	if err := os.Rename(src, dst); err != nil {
		marker := classifyFS(err)
		wrapped := wrap(marker, operation, e.describeMoveFailure(marker, oldName), err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	}

	remark := fmt.Sprintf("Renamed from %s by %s", oldName, actor)
	next := status.NewFile(newName, status.StatusProcessing, e.folders.Import.Label, remark)
	if err := e.store.Rename(ctx, oldName, next); err != nil {
		wrapped := fmt.Errorf("rename: %s moved to %s but status update failed: %w", newName, e.folders.Import.Label, err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return wrapped
	}

	detail := fmt.Sprintf("renamed %s to %s in %s", oldName, newName, e.folders.Import.Label)
	e.record(ctx, actor, operation, detail, true)
	e.logger.Info("file renamed", "from", oldName, "to", newName, "actor", actor)
	return nil
}

// Delete unlinks a file from the failed folder and removes its record. An
// already-absent file still has its record removed and reports alreadyGone:
// the row must never outlive knowledge that its file is gone.
func (e *Engine) Delete(ctx context.Context, name, actor string) (alreadyGone bool, err error) {
	const operation = "delete"

	if err := e.checkConfigured(operation); err != nil {
		e.record(ctx, actor, operation, err.Error(), false)
		return false, err
	}
	release, err := e.acquire()
	if err != nil {
		return false, err
	}
	defer release()

	target := e.folders.Failed.Join(name)
	if err := removeFile(target); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			marker := classifyFS(err)
			msg := fmt.Sprintf("removing %s from %s failed", name, e.folders.Failed.Label)
			if errors.Is(marker, ErrPermission) {
				msg = fmt.Sprintf("%s denies permission to remove %s", e.folders.Failed.Label, name)
			}
			wrapped := wrap(marker, operation, msg, err)
			e.record(ctx, actor, operation, wrapped.Error(), false)
			return false, wrapped
		}
		alreadyGone = true
	}

	if _, err := e.store.DeleteByName(ctx, name); err != nil {
		wrapped := fmt.Errorf("delete: removing status record for %s failed: %w", name, err)
		e.record(ctx, actor, operation, wrapped.Error(), false)
		return alreadyGone, wrapped
	}

	detail := fmt.Sprintf("deleted %s from %s", name, e.folders.Failed.Label)
	if alreadyGone {
		detail = fmt.Sprintf("%s was already gone from %s; removed its status record", name, e.folders.Failed.Label)
	}
	e.record(ctx, actor, operation, detail, true)
	e.logger.Info("file deleted", "file", name, "already_gone", alreadyGone, "actor", actor)
	return alreadyGone, nil
}

// ClearAll deletes every status record without touching the filesystem.
func (e *Engine) ClearAll(ctx context.Context, actor string) (int64, error) {
	const operation = "clear"

	removed, err := e.store.Clear(ctx)
	if err != nil {
		e.record(ctx, actor, operation, fmt.Sprintf("clearing status records failed: %v", err), false)
		return 0, fmt.Errorf("clear status records: %w", err)
	}

	e.record(ctx, actor, operation, fmt.Sprintf("cleared %d status records", removed), true)
	e.logger.Info("status records cleared", "count", removed, "actor", actor)
	return removed, nil
}

func (e *Engine) describeMoveFailure(marker error, name string) string {
	switch {
	case errors.Is(marker, ErrNotFound):
		return fmt.Sprintf("%s is not in %s", name, e.folders.Failed.Label)
	case errors.Is(marker, ErrPermission):
		return fmt.Sprintf("%s or %s denies permission for %s", e.folders.Failed.Label, e.folders.Import.Label, name)
	default:
		return fmt.Sprintf("filesystem operation on %s failed", name)
	}
}
