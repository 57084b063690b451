package models

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

var ErrBlobNotFound = errors.New("blob not found")

// Storage keys, one serialized blob each.
const (
	KeyUser                    = "spotify-live-user"
	KeyCart                    = "spotify-live-cart"
	KeySavedEvents             = "spotify-live-saved-events"
	KeyPurchasedTickets        = "spotify-live-purchased-tickets"
	KeyFilters                 = "spotify-live-filters"
	KeyModalDismissed          = "spotify-live-modal-dismissed"
	KeyModalDismissedPermanent = "spotify-live-modal-dismissed-permanent"
)

// BlobRepo is a flat key/value store of serialized state blobs.
// Get returns ErrBlobNotFound when the key is absent.
type BlobRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// MemoryRepo keeps blobs in process memory. Used by tests and the "memory" driver.
type MemoryRepo struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func MemoryNewRepo() *MemoryRepo {
	return &MemoryRepo{blobs: make(map[string][]byte)}
}

func (m *MemoryRepo) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return slices.Clone(data), nil
}

func (m *MemoryRepo) Put(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = slices.Clone(data)
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error {
	return nil
}

// namespaced prefixes keys so several demo profiles can share one backend.
func namespaced(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
