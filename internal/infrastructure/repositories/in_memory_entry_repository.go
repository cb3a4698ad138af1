package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"file-converter/internal/domain/entities"
)

var ErrEntryNotFound = errors.New("entry not found")

type InMemoryEntryRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.ConversionEntry
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{
		data: make(map[string]*entities.ConversionEntry),
	}
}

func (r *InMemoryEntryRepository) Create(entry *entities.ConversionEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[entry.ID] = entry
	return nil
}

func (r *InMemoryEntryRepository) GetByID(id string) (entities.ConversionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, exists := r.data[id]
	if !exists {
		return entities.ConversionEntry{}, ErrEntryNotFound
	}
	return *entry, nil
}

func (r *InMemoryEntryRepository) GetAll() ([]entities.ConversionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]entities.ConversionEntry, 0, len(r.data))
	for _, entry := range r.data {
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (r *InMemoryEntryRepository) UpdateFormat(id, format string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.data[id]
	if !ok || entry.Status != entities.StatusPending {
		return false
	}
	entry.OutputFormat = format
	entry.UpdatedAt = time.Now()
	return true
}

func (r *InMemoryEntryRepository) UpdateStatus(id string, status entities.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.data[id]
	if !ok {
		return ErrEntryNotFound
	}
	if !entities.CanTransition(entry.Status, status) {
		return fmt.Errorf("illegal transition %s -> %s", entry.Status, status)
	}
	entry.Status = status
	entry.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryEntryRepository) SetResult(id, handle, downloadName, mimeType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.data[id]
	if !ok {
		return ErrEntryNotFound
	}
	if !entities.CanTransition(entry.Status, entities.StatusCompleted) {
		return fmt.Errorf("illegal transition %s -> %s", entry.Status, entities.StatusCompleted)
	}
	entry.Status = entities.StatusCompleted
	entry.OutputHandle = handle
	entry.OutputName = downloadName
	entry.OutputMime = mimeType
	entry.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryEntryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrEntryNotFound
	}
	delete(r.data, id)
	return nil
}
