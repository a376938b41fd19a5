package messages

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

// KVRepository persists messages as one JSON array under the shared
// messages key.
type KVRepository struct {
	store storage.Store
}

func NewKVRepository(store storage.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]Message, error) {
	raw, ok, err := r.store.Get(ctx, common.MessagesKey)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if !ok {
		return []Message{}, nil
	}
	var out []Message
	if err := json.Unmarshal(raw, &out); err != nil {
		// Fail closed on malformed data.
		return []Message{}, nil
	}
	if out == nil {
		out = []Message{}
	}
	return out, nil
}

func (r *KVRepository) Replace(ctx context.Context, msgs []Message) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := r.store.Set(ctx, common.MessagesKey, raw); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	return nil
}
