package status_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shuttle/internal/status"
	"shuttle/internal/testsupport"
)

func TestOpenAppliesMigrations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	file := status.NewFile("report.txt", status.StatusProcessing, "Import Folder", "")
	if err := store.Upsert(ctx, file); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	fetched, err := store.GetByName(ctx, "report.txt")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if fetched == nil || fetched.Status != status.StatusProcessing {
		t.Fatalf("unexpected fetched record: %#v", fetched)
	}
	if fetched.ID != file.ID {
		t.Fatalf("expected id %q, got %q", file.ID, fetched.ID)
	}
}

func TestUpsertReplacesByName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first := status.NewFile("dup.txt", status.StatusProcessing, "Import Folder", "")
	if err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	second := status.NewFile("dup.txt", status.StatusFailed, "Failed Folder", "pipeline error")
	if err := store.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert replace failed: %v", err)
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one record after replace, got %d", len(files))
	}
	if files[0].Status != status.StatusFailed || files[0].Remarks != "pipeline error" {
		t.Fatalf("unexpected replaced record: %#v", files[0])
	}
}

func TestBulkUpsertIsAtomic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	batch := []status.File{
		status.NewFile("a.txt", status.StatusProcessing, "Import Folder", ""),
		status.NewFile("b.txt", status.StatusPublished, "Import Folder", ""),
		{Name: "", Status: status.StatusFailed},
	}
	if _, err := store.BulkUpsert(ctx, batch); err == nil {
		t.Fatal("expected bulk upsert with invalid record to fail")
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no records after failed bulk upsert, got %d", len(files))
	}

	batch = batch[:2]
	count, err := store.BulkUpsert(ctx, batch)
	if err != nil {
		t.Fatalf("BulkUpsert failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 applied, got %d", count)
	}
}

func TestUpdateFieldsSkipsMissingRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	updated, err := store.UpdateFields(ctx, "ghost.txt", status.StatusProcessing, "retried")
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}
	if updated {
		t.Fatal("expected no update for missing record")
	}

	testsupport.SeedFile(t, store, "real.txt", status.StatusFailed, "Failed Folder")
	updated, err = store.UpdateFields(ctx, "real.txt", status.StatusProcessing, "retried by operator")
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}
	if !updated {
		t.Fatal("expected update for existing record")
	}
	fetched, err := store.GetByName(ctx, "real.txt")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if fetched.Status != status.StatusProcessing || fetched.Remarks != "retried by operator" {
		t.Fatalf("unexpected updated record: %#v", fetched)
	}
}

func TestRenameSwapsIdentity(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	old := testsupport.SeedFile(t, store, "old.txt", status.StatusFailed, "Failed Folder")

	next := status.NewFile("new.txt", status.StatusProcessing, "Import Folder", "renamed from old.txt")
	if err := store.Rename(ctx, "old.txt", next); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	gone, err := store.GetByName(ctx, "old.txt")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected old record removed, got %#v", gone)
	}
	fetched, err := store.GetByName(ctx, "new.txt")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if fetched == nil || fetched.ID == old.ID {
		t.Fatalf("expected fresh identity for renamed record, got %#v", fetched)
	}
}

func TestReplaceExpansionKeepsOriginalOnPartialCleanup(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedFile(t, store, "PBCC_A_B_C.txt", status.StatusFailed, "Failed Folder")

	derived := []status.File{
		status.NewFile("PB_A_B_C.txt", status.StatusProcessing, "Import Folder", ""),
		status.NewFile("CC_A_B_C.txt", status.StatusProcessing, "Import Folder", ""),
	}
	if err := store.ReplaceExpansion(ctx, "PBCC_A_B_C.txt", false, derived); err != nil {
		t.Fatalf("ReplaceExpansion failed: %v", err)
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected original plus derived records, got %d", len(files))
	}

	if err := store.ReplaceExpansion(ctx, "PBCC_A_B_C.txt", true, nil); err != nil {
		t.Fatalf("ReplaceExpansion cleanup failed: %v", err)
	}
	original, err := store.GetByName(ctx, "PBCC_A_B_C.txt")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if original != nil {
		t.Fatalf("expected original record removed, got %#v", original)
	}
}

func TestListOrdersByMostRecentUpdate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		file := status.NewFile(fmt.Sprintf("file-%d.txt", i), status.StatusProcessing, "Import Folder", "")
		file.LastUpdated = base.Add(time.Duration(i) * time.Minute)
		if err := store.Upsert(ctx, file); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 records, got %d", len(files))
	}
	if files[0].Name != "file-2.txt" || files[2].Name != "file-0.txt" {
		t.Fatalf("unexpected ordering: %s, %s, %s", files[0].Name, files[1].Name, files[2].Name)
	}
}

func TestClearAndStats(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedFile(t, store, "a.txt", status.StatusProcessing, "Import Folder")
	testsupport.SeedFile(t, store, "b.txt", status.StatusFailed, "Failed Folder")
	testsupport.SeedFile(t, store, "c.txt", status.StatusFailed, "Failed Folder")

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats[status.StatusFailed] != 2 || stats[status.StatusProcessing] != 1 {
		t.Fatalf("unexpected stats: %#v", stats)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	files, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty listing, got %d", len(files))
	}
}

func TestDeleteByName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedFile(t, store, "gone.txt", status.StatusFailed, "Failed Folder")

	existed, err := store.DeleteByName(ctx, "gone.txt")
	if err != nil {
		t.Fatalf("DeleteByName failed: %v", err)
	}
	if !existed {
		t.Fatal("expected delete to report an existing row")
	}
	existed, err = store.DeleteByName(ctx, "gone.txt")
	if err != nil {
		t.Fatalf("DeleteByName failed: %v", err)
	}
	if existed {
		t.Fatal("expected second delete to report no row")
	}
}
