package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"shuttle/internal/audit"
	"shuttle/internal/config"
	"shuttle/internal/folders"
	"shuttle/internal/status"
)

// Engine orchestrates file moves between the watched folders and keeps the
// status store consistent with what is on disk. Within one operation the
// filesystem mutation always commits before the status mutation, so a crash
// between the two leaves a moved file with a stale record (detectable by the
// external pipeline rescanning the folders) rather than a record describing
// a move that never happened.
type Engine struct {
	folders folders.Set
	store   *status.Store
	sink    audit.Sink
	logger  *slog.Logger
	lock    *flock.Flock
}

// New constructs an engine with initialized dependencies.
func New(cfg *config.Config, store *status.Store, sink audit.Sink, logger *slog.Logger) (*Engine, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("engine requires config and store")
	}
	if sink == nil {
		sink = audit.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "shuttle.lock")
	return &Engine{
		folders: folders.FromConfig(cfg),
		store:   store,
		sink:    sink,
		logger:  logger,
		lock:    flock.New(lockPath),
	}, nil
}

// Folders exposes the watched folder set the engine operates on.
func (e *Engine) Folders() folders.Set {
	return e.folders
}

// acquire serializes mutating operations within the host via an advisory
// file lock. Concurrent processes racing past it on the same file lose with
// not-found or a rename conflict, which is reported, not prevented.
func (e *Engine) acquire() (func(), error) {
	if err := e.lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire operation lock: %w", err)
	}
	return func() {
		if err := e.lock.Unlock(); err != nil {
			e.logger.Warn("release operation lock", "error", err)
		}
	}, nil
}

// checkConfigured fails closed before any disk access when a watched path is
// unset.
func (e *Engine) checkConfigured(operation string) error {
	for _, folder := range []folders.Folder{e.folders.Import, e.folders.Failed} {
		if !folder.Configured() {
			return wrap(ErrConfiguration, operation, fmt.Sprintf("%s path is not configured", folder.Label), nil)
		}
	}
	return nil
}

// record appends an audit event for one attempt. Audit failures are logged
// and swallowed; they never abort the primary operation.
func (e *Engine) record(ctx context.Context, actor, action, detail string, success bool) {
	event := audit.Event{Actor: actor, Action: action, Detail: detail, Success: success}
	if err := e.sink.Record(ctx, event); err != nil {
		e.logger.Warn("audit record failed", "action", action, "error", err)
	}
}
