package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"shuttle/internal/config"
)

// Store manages status record persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the status database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying connection so collaborators sharing the database
// (the audit log) can reuse it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

const upsertSQL = `INSERT INTO file_status (name, id, status, source, last_updated, remarks)
     VALUES (?, ?, ?, ?, ?, ?)
     ON CONFLICT(name) DO UPDATE SET
         id = excluded.id,
         status = excluded.status,
         source = excluded.source,
         last_updated = excluded.last_updated,
         remarks = excluded.remarks`

// Upsert inserts a record or replaces the existing row with the same name.
func (s *Store) Upsert(ctx context.Context, file File) error {
	if file.Name == "" {
		return errors.New("file name is required")
	}
	_, err := s.db.ExecContext(ctx, upsertSQL, upsertArgs(file)...)
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	return nil
}

// BulkUpsert applies every upsert in a single transaction so partial
// application never happens. Conflicting names replace the prior row.
func (s *Store) BulkUpsert(ctx context.Context, files []File) (int64, error) {
	if len(files) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bulk upsert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var applied int64
	for _, file := range files {
		if file.Name == "" {
			return 0, errors.New("file name is required")
		}
		if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs(file)...); err != nil {
			return 0, fmt.Errorf("bulk upsert %q: %w", file.Name, err)
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk upsert: %w", err)
	}
	return applied, nil
}

// UpdateFields updates the status and remarks of an existing record and
// refreshes its timestamp. It reports false when no record exists; absence is
// not an error so lifecycle operations can treat the record as optional.
func (s *Store) UpdateFields(ctx context.Context, name string, status Status, remarks string) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE file_status SET status = ?, remarks = ?, last_updated = ? WHERE name = ?`,
		status,
		nullableString(remarks),
		time.Now().UTC().Format(time.RFC3339Nano),
		name,
	)
	if err != nil {
		return false, fmt.Errorf("update status fields: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Rename removes the record keyed by oldName and inserts next as a fresh
// identity in one transaction. The key changed, so the old row is deleted
// rather than mutated in place.
func (s *Store) Rename(ctx context.Context, oldName string, next File) error {
	if next.Name == "" {
		return errors.New("file name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rename tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM file_status WHERE name = ?`, oldName); err != nil {
		return fmt.Errorf("delete renamed record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs(next)...); err != nil {
		return fmt.Errorf("insert renamed record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rename: %w", err)
	}
	return nil
}

// ReplaceExpansion commits the store side of a prefix expansion: the derived
// records are inserted as one unit and, when removeOriginal is set, the
// original record is deleted in the same transaction. When the caller failed
// to unlink the original file its record is kept so the row never outlives
// knowledge of a file that is still on disk.
func (s *Store) ReplaceExpansion(ctx context.Context, originalName string, removeOriginal bool, files []File) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin expansion tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, file := range files {
		if file.Name == "" {
			return errors.New("file name is required")
		}
		if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs(file)...); err != nil {
			return fmt.Errorf("insert expansion record %q: %w", file.Name, err)
		}
	}
	if removeOriginal {
		if _, err := tx.ExecContext(ctx, `DELETE FROM file_status WHERE name = ?`, originalName); err != nil {
			return fmt.Errorf("delete expanded original: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit expansion: %w", err)
	}
	return nil
}

// DeleteByName removes a record, reporting whether a row existed.
func (s *Store) DeleteByName(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM file_status WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes every status record.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM file_status`)
	if err != nil {
		return 0, fmt.Errorf("clear status records: %w", err)
	}
	return res.RowsAffected()
}

const fileColumns = "name, id, status, source, last_updated, remarks"

// GetByName fetches a record by its name key, returning nil when absent.
func (s *Store) GetByName(ctx context.Context, name string) (*File, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+fileColumns+` FROM file_status WHERE name = ?`, name)
	file, err := scanFile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	return file, nil
}

// List returns every record ordered by most recent update first.
func (s *Store) List(ctx context.Context) ([]File, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+fileColumns+` FROM file_status ORDER BY last_updated DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list status records: %w", err)
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, rows.Err()
}

// Stats returns a count of records grouped by status.
func (s *Store) Stats(ctx context.Context) (map[Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM file_status GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("status stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

func upsertArgs(file File) []any {
	updated := file.LastUpdated
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	return []any{
		file.Name,
		file.ID,
		file.Status,
		nullableString(file.Source),
		updated.UTC().Format(time.RFC3339Nano),
		nullableString(file.Remarks),
	}
}

func scanFile(scanner interface{ Scan(dest ...any) error }) (*File, error) {
	var (
		name       string
		id         string
		statusStr  string
		source     sql.NullString
		updatedRaw sql.NullString
		remarks    sql.NullString
	)

	if err := scanner.Scan(&name, &id, &statusStr, &source, &updatedRaw, &remarks); err != nil {
		return nil, err
	}

	file := &File{
		ID:      id,
		Name:    name,
		Status:  Status(statusStr),
		Source:  source.String,
		Remarks: remarks.String,
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		file.LastUpdated = updated
	}
	return file, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
