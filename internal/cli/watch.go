package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/notify"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

// watch mirrors the live updates of a multi-tab deployment: while active,
// writes made by another process against the same store are reflected in the
// console. Press Enter to stop.
func (a *App) watch(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}

	w, ok := a.store.(storage.Watcher)
	if !ok {
		a.println("The current storage backend does not support watching.")
		return nil
	}

	d := notify.NewDispatcher(a.log)

	d.Subscribe(common.MessagesKey, func(ctx context.Context, _ storage.Event) {
		n, err := a.messages.UnreadCount(ctx, u.Email)
		if err != nil {
			a.log.Error(ctx, "unread recount failed", "err", err.Error())
			return
		}
		a.printf("\n[update] inbox changed, %d unread\n", n)
	})

	d.Subscribe(common.UsersKey, func(ctx context.Context, _ storage.Event) {
		all, err := a.users.List(ctx)
		if err != nil {
			a.log.Error(ctx, "registry reload failed", "err", err.Error())
			return
		}
		a.printf("\n[update] alumni registry changed, %d records\n", len(all))
	})

	d.Subscribe(common.SessionKey, func(ctx context.Context, _ storage.Event) {
		fresh, err := a.session.Refresh(ctx)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				a.println("\n[update] session ended elsewhere")
				return
			}
			a.log.Error(ctx, "session refresh failed", "err", err.Error())
			return
		}
		a.printf("\n[update] session refreshed for %s\n", fresh.Email)
	})

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.Run(watchCtx, w)
	}()

	a.println("Watching for changes. Press Enter to stop.")
	stopped := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(stopped)
	}()

	select {
	case <-stopped:
		cancel()
		<-done
		return nil
	case err := <-done:
		if errors.Is(err, storage.ErrWatchUnsupported) {
			a.println("The current storage backend does not support watching.")
			return nil
		}
		return err
	}
}
