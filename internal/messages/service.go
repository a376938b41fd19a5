package messages

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/alumnihub/internal/common"
)

// Service implements the inbox operations. Ids are allocated from a
// store-managed counter (max+1, like user ids) instead of clock readings,
// so a tight broadcast loop cannot mint colliding ids. Collections written
// by the legacy clock-id scheme may still contain duplicates, so lookups
// treat the first id match as the operative record.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func nextID(msgs []Message) int {
	max := 0
	for _, m := range msgs {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// Send stores one message to a single recipient. Blank text (after
// trimming) is rejected before any mutation.
func (s *Service) Send(ctx context.Context, from, fromName, to, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrorEmptyMessage
	}

	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	m := Message{
		ID:        nextID(msgs),
		From:      strings.ToLower(from),
		FromName:  fromName,
		To:        strings.ToLower(to),
		Text:      text,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}

	msgs = append(msgs, m)
	if err := s.repo.Replace(ctx, msgs); err != nil {
		return nil, err
	}
	return &m, nil
}

// Broadcast fans text out to every recipient, one record each, all sharing
// one timestamp. The whole batch lands in a single collection write, so
// within this store generation it is all-or-nothing.
func (s *Service) Broadcast(ctx context.Context, from, fromName string, recipients []string, text string) ([]Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrorEmptyMessage
	}

	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	ts := s.now().UTC().Format(time.RFC3339)
	id := nextID(msgs)
	out := make([]Message, 0, len(recipients))
	for _, to := range recipients {
		m := Message{
			ID:        id,
			From:      strings.ToLower(from),
			FromName:  fromName,
			To:        strings.ToLower(to),
			Text:      text,
			Timestamp: ts,
		}
		id++
		out = append(out, m)
		msgs = append(msgs, m)
	}

	if err := s.repo.Replace(ctx, msgs); err != nil {
		return nil, err
	}
	return out, nil
}

// ListForRecipient returns the inbox for email (case-insensitive on the
// recipient field), newest first. Messages sharing a timestamp — broadcast
// batches — order by descending id.
func (s *Service) ListForRecipient(ctx context.Context, email string) ([]Message, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	inbox := make([]Message, 0)
	for _, m := range msgs {
		if strings.EqualFold(m.To, email) {
			inbox = append(inbox, m)
		}
	}

	sort.SliceStable(inbox, func(i, j int) bool {
		ti, ei := time.Parse(time.RFC3339, inbox[i].Timestamp)
		tj, ej := time.Parse(time.RFC3339, inbox[j].Timestamp)
		if ei != nil || ej != nil {
			// Unparsable timestamps from hand-edited data sort lexically.
			if inbox[i].Timestamp != inbox[j].Timestamp {
				return inbox[i].Timestamp > inbox[j].Timestamp
			}
			return inbox[i].ID > inbox[j].ID
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return inbox[i].ID > inbox[j].ID
	})

	return inbox, nil
}

// UnreadCount returns the unread badge value for email.
func (s *Service) UnreadCount(ctx context.Context, email string) (int, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range msgs {
		if !m.Read && strings.EqualFold(m.To, email) {
			n++
		}
	}
	return n, nil
}

// MarkRead flips the read flag of the first record with the given id.
// Idempotent: an already-read or absent id changes nothing.
func (s *Service) MarkRead(ctx context.Context, id int) error {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID != id {
			continue
		}
		if msgs[i].Read {
			return nil
		}
		msgs[i].Read = true
		return s.repo.Replace(ctx, msgs)
	}
	return nil
}

// Delete removes the first record with the given id. Deleting an absent id
// is a no-op and does not rewrite the collection.
func (s *Service) Delete(ctx context.Context, id int) error {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID == id {
			msgs = append(msgs[:i], msgs[i+1:]...)
			return s.repo.Replace(ctx, msgs)
		}
	}
	return nil
}

// Newest returns the most recent unread message for email, used for
// new-message notifications. ErrorNotFound when the inbox has no unread
// messages.
func (s *Service) Newest(ctx context.Context, email string) (*Message, error) {
	inbox, err := s.ListForRecipient(ctx, email)
	if err != nil {
		return nil, err
	}
	for i := range inbox {
		if !inbox[i].Read {
			m := inbox[i]
			return &m, nil
		}
	}
	return nil, common.ErrorNotFound
}
