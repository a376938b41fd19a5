// Package memory provides a map-backed Store used by tests and embedders.
package memory

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
	subs []chan storage.Event
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Watch returns a channel fed exclusively by Inject, so tests drive
// foreign-context events explicitly. Local Set/Delete calls never produce
// events, matching the Watcher contract.
func (s *Store) Watch(ctx context.Context) (<-chan storage.Event, error) {
	ch := make(chan storage.Event, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Inject simulates a mutation performed by another context.
func (s *Store) Inject(ev storage.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
