package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestCleanupStaleWorkspace(t *testing.T) {
	workDir := t.TempDir()

	stale := filepath.Join(workDir, "old.png")
	fresh := filepath.Join(workDir, "new.png")
	if err := os.WriteFile(stale, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create stale file: %v", err)
	}
	if err := os.WriteFile(fresh, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create fresh file: %v", err)
	}

	past := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(stale, past, past); err != nil {
		t.Fatalf("Failed to age stale file: %v", err)
	}

	svc := NewCleanupService(workDir, zaptest.NewLogger(t))
	if err := svc.CleanupStaleWorkspace(time.Hour); err != nil {
		t.Fatalf("CleanupStaleWorkspace failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected stale file to be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("Expected fresh file to survive")
	}
}

func TestCleanupStaleWorkspace_MissingDir(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "missing"), zaptest.NewLogger(t))
	if err := svc.CleanupStaleWorkspace(time.Hour); err == nil {
		t.Error("Expected error for missing workspace dir")
	}
}

func TestCleanupStaleWorkspace_SkipsDirectories(t *testing.T) {
	workDir := t.TempDir()
	sub := filepath.Join(workDir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	past := time.Now().Add(-2 * time.Hour)
	os.Chtimes(sub, past, past)

	svc := NewCleanupService(workDir, zaptest.NewLogger(t))
	if err := svc.CleanupStaleWorkspace(time.Hour); err != nil {
		t.Fatalf("CleanupStaleWorkspace failed: %v", err)
	}

	if _, err := os.Stat(sub); err != nil {
		t.Error("Expected directories to be left alone")
	}
}
