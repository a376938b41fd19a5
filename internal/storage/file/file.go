// Package file implements a Store keeping one JSON document per key in a
// data directory. Separate processes pointed at the same directory share
// state the way browser tabs share local storage, and Watch surfaces their
// writes through fsnotify.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

const ext = ".json"

type Store struct {
	dir string

	mu sync.Mutex
	// own holds the digest of the last value this instance wrote per key,
	// so Watch can tell local writes from foreign ones.
	own map[string]string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir, own: make(map[string]string)}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+ext)
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return b, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	// Write to a temp file and rename so readers in other contexts never
	// observe a half-written value.
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", key, err)
	}

	s.mu.Lock()
	s.own[key] = digest(value)
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	s.mu.Lock()
	s.own[key] = digest(nil)
	s.mu.Unlock()
	return nil
}

// foreign reports whether the current on-disk content of key differs from
// the last value written by this instance.
func (s *Store) foreign(key string) bool {
	b, err := os.ReadFile(s.path(key))
	var d string
	if err != nil {
		d = digest(nil)
	} else {
		d = digest(b)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.own[key] != d
}

// Watch emits an Event per key mutated by another context. Events for this
// instance's own writes are suppressed by comparing content digests, which
// also absorbs the duplicate notifications fsnotify produces for a single
// rename.
func (s *Store) Watch(ctx context.Context) (<-chan storage.Event, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", s.dir, err)
	}

	ch := make(chan storage.Event, 16)

	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
					continue
				}
				name := filepath.Base(ev.Name)
				if !strings.HasSuffix(name, ext) || strings.Contains(name, ".tmp-") {
					continue
				}
				key := strings.TrimSuffix(name, ext)
				if !s.foreign(key) {
					continue
				}
				select {
				case ch <- storage.Event{Key: key}:
				case <-ctx.Done():
					return
				}
			case <-w.Errors:
				// Watcher errors are not fatal to the store; the consumer
				// keeps working off its local reads.
			}
		}
	}()

	return ch, nil
}
