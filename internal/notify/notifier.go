// Package notify routes foreign-context storage mutations to view-layer
// handlers: the inbox re-renders on message writes, stats recompute on
// registry writes, the session refreshes on snapshot writes. Handlers are
// invoked synchronously so tests can drive the dispatcher with synthetic
// events; nothing here knows how rendering works.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/alumnihub/internal/logging"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

// Handler reacts to one storage mutation.
type Handler func(ctx context.Context, ev storage.Event)

type Dispatcher struct {
	log logging.Logger

	mu   sync.Mutex
	subs map[string]map[string]Handler // key -> handle -> handler
}

func NewDispatcher(log logging.Logger) *Dispatcher {
	return &Dispatcher{
		log:  log,
		subs: make(map[string]map[string]Handler),
	}
}

// Subscribe registers h for mutations of key and returns a handle for
// Unsubscribe.
func (d *Dispatcher) Subscribe(key string, h Handler) string {
	handle := uuid.NewString()
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.subs[key] == nil {
		d.subs[key] = make(map[string]Handler)
	}
	d.subs[key][handle] = h
	return handle
}

// Unsubscribe removes the handler registered under handle. Unknown handles
// are ignored.
func (d *Dispatcher) Unsubscribe(handle string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, hs := range d.subs {
		delete(hs, handle)
	}
}

// Dispatch invokes every handler subscribed to ev.Key, synchronously and in
// unspecified order.
func (d *Dispatcher) Dispatch(ctx context.Context, ev storage.Event) {
	d.mu.Lock()
	hs := make([]Handler, 0, len(d.subs[ev.Key]))
	for _, h := range d.subs[ev.Key] {
		hs = append(hs, h)
	}
	d.mu.Unlock()

	for _, h := range hs {
		h(ctx, ev)
	}
}

// Run pumps events from w into the dispatcher until ctx is cancelled or the
// watch channel closes.
func (d *Dispatcher) Run(ctx context.Context, w storage.Watcher) error {
	ch, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	d.log.Info(ctx, "watching for storage changes")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			d.log.Debug(ctx, "storage change", "key", ev.Key)
			d.Dispatch(ctx, ev)
		}
	}
}
