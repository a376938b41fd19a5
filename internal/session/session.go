// Package session holds the authenticated user's snapshot. The snapshot is
// a cached copy persisted under the shared session key; the user registry
// stays the source of truth, so the snapshot can go stale until the next
// Refresh.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/hashx"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

type Manager struct {
	store storage.Store
	users *users.Service
}

func NewManager(store storage.Store, users *users.Service) *Manager {
	return &Manager{store: store, users: users}
}

// Login verifies credentials and persists the snapshot. A record still
// carrying a clear-text legacy password is upgraded in place on its first
// successful login and verified via the digest path from then on. Any
// mismatch returns ErrorInvalidCredentials without revealing which part was
// wrong, and without mutating the registry.
func (m *Manager) Login(ctx context.Context, email, password string) (*users.User, error) {
	u, err := m.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	switch {
	case u.PasswordHash != "" && hashx.Verify(u.PasswordHash, password):
		// Digest path.
	case u.PasswordHash == "" && u.LegacyPassword != "" && u.LegacyPassword == password:
		u, err = m.users.UpgradeLegacyPassword(ctx, u.ID, hashx.Hash(password))
		if err != nil {
			return nil, fmt.Errorf("legacy upgrade: %w", err)
		}
	default:
		return nil, common.ErrorInvalidCredentials
	}

	if err := m.SetCurrent(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetCurrent persists u as the session snapshot. Used by Login and by the
// auto-login after registration.
func (m *Manager) SetCurrent(ctx context.Context, u *users.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, common.SessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Current returns the cached snapshot, or ErrorNotFound when nobody is
// logged in.
func (m *Manager) Current(ctx context.Context) (*users.User, error) {
	raw, ok, err := m.store.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, common.ErrorNotFound
	}
	var u users.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// Fail closed: a corrupt snapshot reads as logged out.
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

// Refresh re-reads the authoritative record and replaces the snapshot. Call
// before rendering anything that depends on up-to-date profile fields. If
// the record was deleted, the session is cleared and ErrorNotFound
// returned.
func (m *Manager) Refresh(ctx context.Context) (*users.User, error) {
	cur, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	fresh, err := m.users.FindByID(ctx, cur.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = m.Logout(ctx)
		}
		return nil, err
	}
	if err := m.SetCurrent(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Logout clears the snapshot. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, common.SessionKey)
}
