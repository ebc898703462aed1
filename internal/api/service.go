package api

import (
	"context"
	"errors"
	"fmt"
	"io"

	"shuttle/internal/engine"
	"shuttle/internal/status"
	"shuttle/internal/transfer"
)

// StatusReader abstracts the store interactions needed for API queries.
type StatusReader interface {
	List(ctx context.Context) ([]status.File, error)
	Stats(ctx context.Context) (map[status.Status]int, error)
}

// StatusImporter abstracts the bulk write used by CSV import.
type StatusImporter interface {
	BulkUpsert(ctx context.Context, files []status.File) (int64, error)
}

// FileService exposes the lifecycle operations in result shapes suited to
// CLI and transport consumers. Mutations never return a Go error; failures
// are folded into the result so callers render rather than branch.
type FileService struct {
	engine *engine.Engine
	reader StatusReader
	writer StatusImporter
}

// NewFileService constructs a FileService around the engine and store.
func NewFileService(eng *engine.Engine, store *status.Store) *FileService {
	if eng == nil || store == nil {
		return nil
	}
	return &FileService{engine: eng, reader: store, writer: store}
}

// CheckWriteAccess probes the watched folders.
func (s *FileService) CheckWriteAccess() WriteAccess {
	if s == nil {
		return WriteAccess{Error: "service not initialized"}
	}
	access := s.engine.Folders().CheckWriteAccess()
	return WriteAccess{CanWrite: access.CanWrite, Error: access.Reason}
}

// RetryFile moves a failed file back into the import folder.
func (s *FileService) RetryFile(ctx context.Context, name, actor string) OperationResult {
	if s == nil {
		return OperationResult{Error: "service not initialized"}
	}
	if err := s.engine.Retry(ctx, name, actor); err != nil {
		return OperationResult{Error: err.Error()}
	}
	return OperationResult{Success: true}
}

// RenameFile moves a failed file into the import folder under a new name.
func (s *FileService) RenameFile(ctx context.Context, oldName, newName, actor string) OperationResult {
	if s == nil {
		return OperationResult{Error: "service not initialized"}
	}
	if err := s.engine.Rename(ctx, oldName, newName, actor); err != nil {
		return OperationResult{Error: err.Error()}
	}
	return OperationResult{Success: true}
}

// DeleteFailedFile removes a file from the failed folder along with its
// status record. A file that was already gone still succeeds, with a
// warning so the caller knows only the record was removed.
func (s *FileService) DeleteFailedFile(ctx context.Context, name, actor string) OperationResult {
	if s == nil {
		return OperationResult{Error: "service not initialized"}
	}
	alreadyGone, err := s.engine.Delete(ctx, name, actor)
	if err != nil {
		return OperationResult{Error: err.Error()}
	}
	result := OperationResult{Success: true}
	if alreadyGone {
		result.Warning = fmt.Sprintf("%s was already gone; removed its status record", name)
	}
	return result
}

// ExpandFilePrefixes splits a multi-prefix failed file into per-prefix
// copies in the import folder.
func (s *FileService) ExpandFilePrefixes(ctx context.Context, name, actor string) ExpandResult {
	if s == nil {
		return ExpandResult{Error: "service not initialized"}
	}
	count, err := s.engine.Expand(ctx, name, actor)
	if err != nil {
		return ExpandResult{Count: count, Error: err.Error()}
	}
	return ExpandResult{Success: true, Count: count}
}

// ClearAllFileStatuses removes every status record, leaving files alone.
func (s *FileService) ClearAllFileStatuses(ctx context.Context, actor string) ClearResult {
	if s == nil {
		return ClearResult{Error: "service not initialized"}
	}
	removed, err := s.engine.ClearAll(ctx, actor)
	if err != nil {
		return ClearResult{Error: err.Error()}
	}
	return ClearResult{Success: true, Removed: removed}
}

// ListFileStatuses returns every tracked file, most recently updated first.
func (s *FileService) ListFileStatuses(ctx context.Context) ([]FileStatus, error) {
	if s == nil || s.reader == nil {
		return nil, nil
	}
	files, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	return FromFiles(files), nil
}

// FileStatusStats returns per-status counts keyed by status string.
func (s *FileService) FileStatusStats(ctx context.Context) (map[string]int, error) {
	if s == nil || s.reader == nil {
		return nil, nil
	}
	stats, err := s.reader.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return MergeStats(stats), nil
}

// BulkExport writes every tracked file to w in the CSV interchange format.
func (s *FileService) BulkExport(ctx context.Context, w io.Writer) error {
	if s == nil || s.reader == nil {
		return errors.New("service not initialized")
	}
	files, err := s.reader.List(ctx)
	if err != nil {
		return fmt.Errorf("export status records: %w", err)
	}
	return transfer.Write(w, files)
}

// BulkImport reads CSV records from r and upserts them by name. Importing
// the same file twice is a no-op beyond refreshed rows; a parse failure
// imports nothing.
func (s *FileService) BulkImport(ctx context.Context, r io.Reader) ImportResult {
	if s == nil || s.writer == nil {
		return ImportResult{Error: "service not initialized"}
	}
	files, err := transfer.Read(r)
	if err != nil {
		return ImportResult{Error: err.Error()}
	}
	imported, err := s.writer.BulkUpsert(ctx, files)
	if err != nil {
		return ImportResult{Error: fmt.Sprintf("import status records: %v", err)}
	}
	return ImportResult{Success: true, ImportedCount: imported}
}
