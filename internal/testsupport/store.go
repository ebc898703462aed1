package testsupport

import (
	"context"
	"testing"

	"shuttle/internal/config"
	"shuttle/internal/status"
)

// MustOpenStore opens a status.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *status.Store {
	t.Helper()

	store, err := status.Open(cfg)
	if err != nil {
		t.Fatalf("status.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedFile upserts a record for tests using the provided store.
func SeedFile(t testing.TB, store *status.Store, name string, st status.Status, source string) status.File {
	t.Helper()

	file := status.NewFile(name, st, source, "")
	if err := store.Upsert(context.Background(), file); err != nil {
		t.Fatalf("store.Upsert: %v", err)
	}
	return file
}
