// Package storage defines the key/value Store capability all components
// depend on. It is the Go rendition of the single shared browser storage the
// system was designed around: every operation is a full read-modify-write of
// one value, and two contexts writing the same key back-to-back resolve as
// last-writer-wins with no merge or conflict detection. That lost-update
// hazard is part of the contract, not a bug to fix here.
package storage

import (
	"context"
	"errors"
)

// Store is an injected capability; components never reach into ambient
// storage directly, which keeps them testable against in-memory fakes.
type Store interface {
	// Get returns the raw value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Event describes a mutation made by another context sharing the same
// backing data.
type Event struct {
	Key string
}

// Watcher is implemented by backends that can observe foreign-context
// mutations. Events are never delivered for writes made through the local
// Store instance.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// ErrWatchUnsupported is returned by backends without change notification.
var ErrWatchUnsupported = errors.New("storage: backend does not support watching")
