// Package export produces the downloadable JSON documents and the in-store
// backup snapshots of the user collection.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

// Users renders the full collection as an indented JSON document.
func Users(us []users.User) ([]byte, error) {
	return json.MarshalIndent(us, "", "  ")
}

// SingleUser renders one record as an indented JSON document.
func SingleUser(u users.User) ([]byte, error) {
	return json.MarshalIndent(u, "", "  ")
}

// AllFileName derives the full-export file name, e.g.
// alumni-system-backup-2025-08-30.json.
func AllFileName(now time.Time) string {
	return fmt.Sprintf("alumni-system-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// UserFileName derives the single-user export file name from the display
// name, e.g. alumni-data-john-smith.json.
func UserFileName(u users.User) string {
	slug := strings.ToLower(strings.Join(strings.Fields(u.Name), "-"))
	return fmt.Sprintf("alumni-data-%s.json", slug)
}

// BackupKey derives the in-store snapshot key from a timestamp; colons and
// dots are replaced so the key doubles as a safe file name under the file
// backend.
func BackupKey(now time.Time) string {
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return common.BackupKeyPrefix + ts
}

// Backup snapshots the raw user collection under a timestamped key and
// returns that key. An absent collection snapshots as an empty array.
func Backup(ctx context.Context, store storage.Store, now time.Time) (string, error) {
	raw, ok, err := store.Get(ctx, common.UsersKey)
	if err != nil {
		return "", fmt.Errorf("read users: %w", err)
	}
	if !ok {
		raw = []byte("[]")
	}
	key := BackupKey(now)
	if err := store.Set(ctx, key, raw); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return key, nil
}
