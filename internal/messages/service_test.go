package messages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	s := NewService(NewKVRepository(store))
	return s, store
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores one message", func(t *testing.T) {
		s, _ := newTestService(t)
		s.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

		m, err := s.Send(ctx, "Admin@X.com", "Admin", "John@X.com", "  hello  ")
		require.NoError(t, err)

		assert.Equal(t, 1, m.ID)
		assert.Equal(t, "admin@x.com", m.From)
		assert.Equal(t, "john@x.com", m.To)
		assert.Equal(t, "hello", m.Text)
		assert.Equal(t, "2026-08-30T12:00:00Z", m.Timestamp)
		assert.False(t, m.Read)
	})

	t.Run("blank text rejected before mutation", func(t *testing.T) {
		s, store := newTestService(t)

		_, err := s.Send(ctx, "a@x.com", "A", "b@x.com", "   ")
		require.ErrorIs(t, err, common.ErrorEmptyMessage)

		_, ok, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)
		assert.False(t, ok, "collection must not be written")
	})

	t.Run("ids strictly increase", func(t *testing.T) {
		s, _ := newTestService(t)
		m1, err := s.Send(ctx, "a@x.com", "A", "b@x.com", "one")
		require.NoError(t, err)
		m2, err := s.Send(ctx, "a@x.com", "A", "b@x.com", "two")
		require.NoError(t, err)
		assert.Greater(t, m2.ID, m1.ID)
	})
}

func TestBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("one record per recipient, shared timestamp", func(t *testing.T) {
		s, _ := newTestService(t)
		s.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

		out, err := s.Broadcast(ctx, "admin@x.com", "Admin", []string{"a@x.com", "b@x.com", "c@x.com"}, "reunion!")
		require.NoError(t, err)
		require.Len(t, out, 3)

		seen := make(map[int]bool)
		for _, m := range out {
			assert.Equal(t, "reunion!", m.Text)
			assert.Equal(t, out[0].Timestamp, m.Timestamp)
			assert.False(t, m.Read)
			assert.False(t, seen[m.ID], "ids must be distinct")
			seen[m.ID] = true
		}
	})

	t.Run("blank text rejected", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.Broadcast(ctx, "admin@x.com", "Admin", []string{"a@x.com"}, "")
		require.ErrorIs(t, err, common.ErrorEmptyMessage)
	})

	t.Run("batch lands in a single write", func(t *testing.T) {
		s, _ := newTestService(t)
		_, err := s.Broadcast(ctx, "admin@x.com", "Admin", []string{"a@x.com", "b@x.com"}, "hi")
		require.NoError(t, err)

		msgs, err := s.repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})
}

func TestListForRecipient(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	s.now = fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	_, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "oldest")
	require.NoError(t, err)

	s.now = fixedClock(time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC))
	_, err = s.Send(ctx, "a@x.com", "A", "ME@X.COM", "middle")
	require.NoError(t, err)
	_, err = s.Send(ctx, "a@x.com", "A", "other@x.com", "not mine")
	require.NoError(t, err)

	s.now = fixedClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	_, err = s.Broadcast(ctx, "a@x.com", "A", []string{"me@x.com", "me@x.com"}, "newest")
	require.NoError(t, err)

	inbox, err := s.ListForRecipient(ctx, "Me@X.com")
	require.NoError(t, err)
	require.Len(t, inbox, 4)

	assert.Equal(t, "newest", inbox[0].Text)
	assert.Equal(t, "newest", inbox[1].Text)
	// Same-timestamp broadcast records order by descending id.
	assert.Greater(t, inbox[0].ID, inbox[1].ID)
	assert.Equal(t, "middle", inbox[2].Text)
	assert.Equal(t, "oldest", inbox[3].Text)
}

func TestUnreadCount(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	m1, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "one")
	require.NoError(t, err)
	_, err = s.Send(ctx, "a@x.com", "A", "me@x.com", "two")
	require.NoError(t, err)
	_, err = s.Send(ctx, "a@x.com", "A", "other@x.com", "three")
	require.NoError(t, err)

	n, err := s.UnreadCount(ctx, "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.MarkRead(ctx, m1.ID))

	n, err = s.UnreadCount(ctx, "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag once", func(t *testing.T) {
		s, store := newTestService(t)
		m, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "hi")
		require.NoError(t, err)

		require.NoError(t, s.MarkRead(ctx, m.ID))

		before, _, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)

		// Second call is a no-op and must not rewrite the collection.
		require.NoError(t, s.MarkRead(ctx, m.ID))

		after, _, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s, store := newTestService(t)
		require.NoError(t, s.MarkRead(ctx, 42))

		_, ok, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record", func(t *testing.T) {
		s, _ := newTestService(t)
		m, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "hi")
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, m.ID))

		inbox, err := s.ListForRecipient(ctx, "me@x.com")
		require.NoError(t, err)
		assert.Empty(t, inbox)
	})

	t.Run("absent id does not rewrite", func(t *testing.T) {
		s, store := newTestService(t)
		_, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "hi")
		require.NoError(t, err)

		before, _, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, 42))

		after, _, err := store.Get(ctx, common.MessagesKey)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestNewest(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	s.now = fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	old, err := s.Send(ctx, "a@x.com", "A", "me@x.com", "old")
	require.NoError(t, err)

	s.now = fixedClock(time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC))
	_, err = s.Send(ctx, "a@x.com", "A", "me@x.com", "new")
	require.NoError(t, err)

	m, err := s.Newest(ctx, "me@x.com")
	require.NoError(t, err)
	assert.Equal(t, "new", m.Text)

	// Reading everything empties the notification source.
	require.NoError(t, s.MarkRead(ctx, m.ID))
	require.NoError(t, s.MarkRead(ctx, old.ID))

	_, err = s.Newest(ctx, "me@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLegacyDuplicateIDs_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	// Collections written by the old clock-based id scheme can hold
	// duplicates.
	require.NoError(t, s.repo.Replace(ctx, []Message{
		{ID: 7, From: "a@x.com", To: "me@x.com", Text: "first", Timestamp: "2026-08-30T10:00:00Z"},
		{ID: 7, From: "a@x.com", To: "me@x.com", Text: "second", Timestamp: "2026-08-30T10:00:00Z"},
	}))

	require.NoError(t, s.MarkRead(ctx, 7))

	msgs, err := s.repo.List(ctx)
	require.NoError(t, err)
	assert.True(t, msgs[0].Read)
	assert.False(t, msgs[1].Read)

	require.NoError(t, s.Delete(ctx, 7))
	msgs, err = s.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "second", msgs[0].Text)
}
