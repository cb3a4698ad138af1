package storage

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrBlobNotFound = errors.New("blob not found")

type blob struct {
	data     []byte
	mimeType string
}

// InMemoryBlobStore keeps binary resources in process memory and addresses
// them by opaque blob: handles. Everything is dropped when the process ends.
type InMemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]blob
}

func NewInMemoryBlobStore() *InMemoryBlobStore {
	return &InMemoryBlobStore{
		blobs: make(map[string]blob),
	}
}

// Put stores a copy of data under a fresh handle. The copy matters: callers
// may hand in buffers that are reused or invalidated after the call.
func (s *InMemoryBlobStore) Put(data []byte, mimeType string) (string, error) {
	owned := make([]byte, len(data))
	copy(owned, data)

	handle := "blob:" + uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[handle] = blob{data: owned, mimeType: mimeType}
	return handle, nil
}

func (s *InMemoryBlobStore) Get(handle string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[handle]
	if !ok {
		return nil, "", ErrBlobNotFound
	}
	return b.data, b.mimeType, nil
}

func (s *InMemoryBlobStore) Revoke(handle string) {
	if handle == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, handle)
}
