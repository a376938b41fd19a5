// Package cli implements the interactive console over the alumni core.
// Every REPL command maps to a dashboard action; rendering is plain text.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/config"
	"github.com/dmitrijs2005/alumnihub/internal/logging"
	"github.com/dmitrijs2005/alumnihub/internal/messages"
	"github.com/dmitrijs2005/alumnihub/internal/session"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
	"github.com/dmitrijs2005/alumnihub/internal/storage/file"
	"github.com/dmitrijs2005/alumnihub/internal/storage/memory"
	"github.com/dmitrijs2005/alumnihub/internal/storage/sqlite"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    storage.Store
	users    *users.Service
	messages *messages.Service
	session  *session.Manager
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups)

	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init: %w", err)
	}

	us := users.NewService(users.NewKVRepository(store), store)
	ms := messages.NewService(messages.NewKVRepository(store))
	sess := session.NewManager(store, us)

	return &App{
		config:   cfg,
		log:      log,
		store:    store,
		users:    us,
		messages: ms,
		session:  sess,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		return sqlite.Open(context.Background(), cfg.SQLitePath)
	case config.BackendFile, "":
		return file.New(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Bootstrap runs the startup passes: demo seed on an empty collection,
// admin normalization, one-time admin creation.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.users.SeedDemo(ctx); err != nil {
		return err
	}
	return a.users.EnsureAdminExists(ctx, nil)
}

func (a *App) Run(ctx context.Context) error {
	if err := a.Bootstrap(ctx); err != nil {
		return err
	}
	a.Root(ctx)
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// current returns the logged-in snapshot, or nil after printing a hint.
func (a *App) current(ctx context.Context) *users.User {
	u, err := a.session.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("Please log in first.")
		} else {
			a.printf("session error: %v\n", err)
		}
		return nil
	}
	return u
}

// currentAdmin returns the logged-in admin, or nil after printing a hint.
func (a *App) currentAdmin(ctx context.Context) *users.User {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	if !u.IsAdmin() {
		a.println("This command requires the admin account.")
		return nil
	}
	return u
}
