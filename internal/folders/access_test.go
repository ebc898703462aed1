package folders_test

import (
	"os"
	"strings"
	"testing"

	"shuttle/internal/folders"
	"shuttle/internal/testsupport"
)

func TestCheckWriteAccessOK(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	set := folders.FromConfig(cfg)

	access := set.CheckWriteAccess()
	if !access.CanWrite {
		t.Fatalf("expected writable folders, got reason %q", access.Reason)
	}
	if access.Reason != "" {
		t.Fatalf("expected empty reason, got %q", access.Reason)
	}
}

func TestCheckWriteAccessUnconfigured(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.FailedDir = ""
	set := folders.FromConfig(cfg)

	access := set.CheckWriteAccess()
	if access.CanWrite {
		t.Fatal("expected check to fail closed on unconfigured path")
	}
	if !strings.Contains(access.Reason, cfg.Folders.FailedLabel) {
		t.Fatalf("expected reason to name the folder, got %q", access.Reason)
	}
	if !strings.Contains(access.Reason, "not configured") {
		t.Fatalf("expected configuration reason, got %q", access.Reason)
	}
}

func TestCheckWriteAccessMissingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutWatchedDirs())
	set := folders.FromConfig(cfg)

	access := set.CheckWriteAccess()
	if access.CanWrite {
		t.Fatal("expected check to fail for missing directory")
	}
	if !strings.Contains(access.Reason, "does not exist") {
		t.Fatalf("expected missing-directory reason, got %q", access.Reason)
	}
}

func TestCheckWriteAccessPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	cfg := testsupport.NewConfig(t)
	if err := os.Chmod(cfg.Paths.ImportDir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(cfg.Paths.ImportDir, 0o755)
	})

	set := folders.FromConfig(cfg)
	access := set.CheckWriteAccess()
	if access.CanWrite {
		t.Fatal("expected check to fail for read-only directory")
	}
	if !strings.Contains(access.Reason, "denies write permission") {
		t.Fatalf("expected permission reason, got %q", access.Reason)
	}
	if !strings.Contains(access.Reason, cfg.Folders.ImportLabel) {
		t.Fatalf("expected reason to name the folder, got %q", access.Reason)
	}
}
