package repositories

import (
	"testing"

	"file-converter/internal/domain/entities"

	"github.com/google/uuid"
)

func newPendingEntry() *entities.ConversionEntry {
	return &entities.ConversionEntry{
		ID:           uuid.New().String(),
		OriginalName: "photo.png",
		ContentType:  "image/png",
		Kind:         entities.KindImage,
		Status:       entities.StatusPending,
		OutputFormat: "png",
	}
}

func TestInMemoryEntryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	entry := newPendingEntry()

	if err := repo.Create(entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(entry.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != entities.StatusPending {
		t.Errorf("Expected pending, got %s", got.Status)
	}

	// GetByID hands out a copy; the stored entry stays untouched.
	got.Status = entities.StatusError
	again, _ := repo.GetByID(entry.ID)
	if again.Status != entities.StatusPending {
		t.Error("GetByID must return a copy")
	}
}

func TestInMemoryEntryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	if _, err := repo.GetByID("missing"); err == nil {
		t.Fatal("Expected error for missing entry")
	}
}

func TestInMemoryEntryRepository_UpdateStatus_ValidatesTransitions(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	entry := newPendingEntry()
	repo.Create(entry)

	if err := repo.UpdateStatus(entry.ID, entities.StatusCompleted); err == nil {
		t.Error("Expected pending -> completed to be rejected")
	}
	if err := repo.UpdateStatus(entry.ID, entities.StatusConverting); err != nil {
		t.Fatalf("pending -> converting failed: %v", err)
	}
	if err := repo.UpdateStatus(entry.ID, entities.StatusError); err != nil {
		t.Fatalf("converting -> error failed: %v", err)
	}
	if err := repo.UpdateStatus(entry.ID, entities.StatusConverting); err == nil {
		t.Error("Expected error -> converting to be rejected")
	}
}

func TestInMemoryEntryRepository_UpdateFormat_PendingOnly(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	entry := newPendingEntry()
	repo.Create(entry)

	if !repo.UpdateFormat(entry.ID, "webp") {
		t.Fatal("Expected format update on pending entry")
	}
	got, _ := repo.GetByID(entry.ID)
	if got.OutputFormat != "webp" {
		t.Errorf("Expected webp, got %s", got.OutputFormat)
	}

	repo.UpdateStatus(entry.ID, entities.StatusConverting)
	if repo.UpdateFormat(entry.ID, "gif") {
		t.Error("Expected format update to be ignored once converting")
	}
	if repo.UpdateFormat("missing", "gif") {
		t.Error("Expected format update to be ignored for missing entry")
	}
}

func TestInMemoryEntryRepository_SetResult(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	entry := newPendingEntry()
	repo.Create(entry)
	repo.UpdateStatus(entry.ID, entities.StatusConverting)

	if err := repo.SetResult(entry.ID, "blob:x", "converted_photo.png", "image/png"); err != nil {
		t.Fatalf("SetResult failed: %v", err)
	}

	got, _ := repo.GetByID(entry.ID)
	if got.Status != entities.StatusCompleted {
		t.Errorf("Expected completed, got %s", got.Status)
	}
	if got.OutputHandle != "blob:x" || got.OutputName != "converted_photo.png" || got.OutputMime != "image/png" {
		t.Errorf("Output resource not attached: %+v", got)
	}

	// Terminal: a second result must not be applied.
	if err := repo.SetResult(entry.ID, "blob:y", "other", "image/png"); err == nil {
		t.Error("Expected SetResult on completed entry to be rejected")
	}
}

func TestInMemoryEntryRepository_Delete(t *testing.T) {
	repo := NewInMemoryEntryRepository()
	entry := newPendingEntry()
	repo.Create(entry)

	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(entry.ID); err == nil {
		t.Error("Expected error deleting missing entry")
	}
	if _, err := repo.GetByID(entry.ID); err == nil {
		t.Error("Expected entry to be gone")
	}
}
