package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

// KVRepository persists the registry as one JSON array under the shared
// users key.
type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]User, error) {
	raw, ok, err := r.store.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return []User{}, nil
	}
	var out []User
	if err := json.Unmarshal(raw, &out); err != nil {
		// Fail closed: a malformed collection reads as empty rather than
		// aborting initialization.
		return []User{}, nil
	}
	if out == nil {
		out = []User{}
	}
	return out, nil
}

func (r *KVRepository) Replace(ctx context.Context, users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.Set(ctx, common.UsersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
