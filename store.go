package vectree

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// Persist is the interface for loading and storing serialized trees. The
// name a tree is stored under derives from its content, so the bytes for
// a given name are immutable (never modified).
type Persist interface {
	// Store makes the given bytes accessible by the given name.
	Store(ctx context.Context, name string, data []byte) error
	// Load retrieves previously-stored bytes by the given name.
	Load(ctx context.Context, name string) ([]byte, error)
}

// snapshot holds decoded nodes in a cache without aliasing any live tree.
type snapshot[V any] struct {
	nodes []Node[V]
}

// Save encodes the tree, names it by the hash of its encoding and stores
// it with the given Persist. The returned name retrieves the same tree
// with LoadTree. cache and marshal may be nil; with a cache, storing an
// already-persisted snapshot is skipped.
func (t *Tree[V]) Save(ctx context.Context, persist Persist, cache SnapshotCache, marshal func(interface{}) ([]byte, error)) (string, error) {
	encoded, err := MarshalTree(t, marshal)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	hashBytes := blake2b.Sum256(encoded)
	name := base64.RawURLEncoding.EncodeToString(hashBytes[:])
	if cache != nil && cache.Contains(name) {
		return name, nil
	}
	if err := persist.Store(ctx, name, encoded); err != nil {
		return "", fmt.Errorf("persist store: %w", err)
	}
	if cache != nil {
		cache.Add(name, snapshot[V]{nodes: t.Clone().nodes})
	}
	return name, nil
}

// LoadTree retrieves the tree previously stored under the given name,
// checking the cache first. The decoded tree shares no state with the
// cache entry.
func LoadTree[V any](ctx context.Context, persist Persist, cache SnapshotCache, name string, unmarshal func([]byte, interface{}) error) (*Tree[V], error) {
	if cache != nil {
		if cached, ok := cache.Get(name); ok {
			if snap, ok := cached.(snapshot[V]); ok {
				cp := make([]Node[V], len(snap.nodes))
				copy(cp, snap.nodes)
				return &Tree[V]{nodes: cp}, nil
			}
		}
	}
	encoded, err := persist.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("persist load %s: %w", name, err)
	}
	t, err := UnmarshalTree[V](encoded, unmarshal)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", name, err)
	}
	if cache != nil {
		cache.Add(name, snapshot[V]{nodes: t.Clone().nodes})
	}
	return t, nil
}
