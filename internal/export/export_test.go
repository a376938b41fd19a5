package export

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage/memory"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

func TestUsers_Indented(t *testing.T) {
	doc, err := Users([]users.User{{ID: 1, Name: "A", Email: "a@x.com", Role: users.RoleAlumni}})
	require.NoError(t, err)
	assert.Contains(t, string(doc), "\n  ")

	var back []users.User
	require.NoError(t, json.Unmarshal(doc, &back))
	require.Len(t, back, 1)
	assert.Equal(t, "a@x.com", back[0].Email)
}

func TestAllFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "alumni-system-backup-2026-08-30.json", AllFileName(now))
}

func TestUserFileName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "John Smith", expected: "alumni-data-john-smith.json"},
		{name: "  Priya   Kumar ", expected: "alumni-data-priya-kumar.json"},
		{name: "Cher", expected: "alumni-data-cher.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserFileName(users.User{Name: tt.name}))
	}
}

func TestBackupKey(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 34, 56, 789000000, time.UTC)
	key := BackupKey(now)
	assert.Equal(t, common.BackupKeyPrefix+"2026-08-30T12-34-56-789Z", key)
	// The key must be safe as a file name under the file backend.
	assert.NotContains(t, key, ":")
	assert.NotContains(t, key, ".")
}

func TestBackup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("snapshots the raw collection", func(t *testing.T) {
		store := memory.New()
		raw := []byte(`[{"id":1,"email":"a@x.com","role":"alumni"}]`)
		require.NoError(t, store.Set(ctx, common.UsersKey, raw))

		key, err := Backup(ctx, store, now)
		require.NoError(t, err)

		snap, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, raw, snap)
	})

	t.Run("absent collection snapshots as empty array", func(t *testing.T) {
		store := memory.New()

		key, err := Backup(ctx, store, now)
		require.NoError(t, err)

		snap, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("[]"), snap)
	})
}
