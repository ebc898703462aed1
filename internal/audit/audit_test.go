package audit_test

import (
	"context"
	"testing"

	"shuttle/internal/audit"
	"shuttle/internal/testsupport"
)

func TestRecordAndList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	log := audit.NewLog(store.DB())

	ctx := context.Background()
	events := []audit.Event{
		{Actor: "operator", Action: "retry", Detail: "moved a.txt to Import Folder", Success: true},
		{Actor: "operator", Action: "delete", Detail: "b.txt missing from Failed Folder", Success: false},
	}
	for _, event := range events {
		if err := log.Record(ctx, event); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	listed, err := log.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 events, got %d", len(listed))
	}
	if listed[0].Action != "delete" {
		t.Fatalf("expected newest event first, got %q", listed[0].Action)
	}
	if listed[0].Success {
		t.Fatal("expected failure event to round-trip success=false")
	}
	if listed[1].OccurredAt.IsZero() {
		t.Fatal("expected recorded timestamp")
	}
}

func TestListLimit(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	log := audit.NewLog(store.DB())

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := log.Record(ctx, audit.Event{Action: "expand", Success: true}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	listed, err := log.List(ctx, 3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(listed))
	}
}
