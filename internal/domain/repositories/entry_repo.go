package repositories

import "file-converter/internal/domain/entities"

// EntryRepository tracks conversion entries for the lifetime of the process.
// Mutations happen under the repository's lock so the per-entry state machine
// stays consistent across concurrent conversions.
type EntryRepository interface {
	Create(entry *entities.ConversionEntry) error
	GetByID(id string) (entities.ConversionEntry, error)
	GetAll() ([]entities.ConversionEntry, error)
	// UpdateFormat sets the requested output format while the entry is
	// still pending. It reports whether anything changed; a missing or
	// non-pending entry is a no-op.
	UpdateFormat(id, format string) bool
	// UpdateStatus applies a validated status transition.
	UpdateStatus(id string, status entities.Status) error
	// SetResult transitions converting -> completed and attaches the
	// output resource in one step.
	SetResult(id, handle, downloadName, mimeType string) error
	Delete(id string) error
}
