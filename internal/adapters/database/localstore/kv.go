package localstore

import (
	"context"
	"sync"
)

// KV is the minimal persistent key-value contract the local backend needs:
// one opaque value per key, read and replaced wholesale.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores the value under the key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// MemoryKV is an in-process KV used by tests and throwaway deployments.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

var _ KV = (*MemoryKV)(nil)

// Get returns a copy of the stored value.
func (kv *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Put stores a copy of the value.
func (kv *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	kv.values[key] = stored
	return nil
}
