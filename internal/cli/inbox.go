package cli

import (
	"context"
	"strconv"
	"time"
)

func (a *App) showInbox(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}

	inbox, err := a.messages.ListForRecipient(ctx, u.Email)
	if err != nil {
		return err
	}
	unread, err := a.messages.UnreadCount(ctx, u.Email)
	if err != nil {
		return err
	}

	if len(inbox) == 0 {
		a.println("No messages yet.")
		return nil
	}

	a.printf("Inbox (%d messages, %d unread)\n", len(inbox), unread)
	for _, m := range inbox {
		marker := " "
		if !m.Read {
			marker = "*"
		}
		from := m.FromName
		if from == "" {
			from = m.From
		}
		ts := m.Timestamp
		if t, err := time.Parse(time.RFC3339, m.Timestamp); err == nil {
			ts = t.Local().Format("2006-01-02 15:04")
		}
		a.printf("%s [%d] %s (%s)\n    %s\n", marker, m.ID, from, ts, m.Text)
	}
	return nil
}

func (a *App) send(ctx context.Context, args []string) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	if len(args) == 0 {
		a.println("Usage: send <email>")
		return nil
	}
	to := args[0]

	text, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	if _, err := a.messages.Send(ctx, u.Email, u.Name, to, text); err != nil {
		return err
	}
	a.println("Message sent.")
	return nil
}

// broadcast fans one message out to every alumni record. Admin only, like
// the "send to all" checkbox.
func (a *App) broadcast(ctx context.Context) error {
	u := a.currentAdmin(ctx)
	if u == nil {
		return nil
	}

	text, err := getSimpleText(a.reader, "Broadcast message", a.out)
	if err != nil {
		return err
	}

	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	recipients := make([]string, 0, len(all))
	for _, r := range all {
		if !r.IsAdmin() {
			recipients = append(recipients, r.Email)
		}
	}

	sent, err := a.messages.Broadcast(ctx, u.Email, u.Name, recipients, text)
	if err != nil {
		return err
	}
	a.printf("Broadcast sent to %d alumni.\n", len(sent))
	return nil
}

func (a *App) markRead(ctx context.Context, args []string) error {
	if a.current(ctx) == nil {
		return nil
	}
	if len(args) == 0 {
		a.println("Usage: read <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.println("Usage: read <id>")
		return nil
	}
	return a.messages.MarkRead(ctx, id)
}

func (a *App) deleteMessage(ctx context.Context, args []string) error {
	if a.current(ctx) == nil {
		return nil
	}
	if len(args) == 0 {
		a.println("Usage: rm <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.println("Usage: rm <id>")
		return nil
	}
	return a.messages.Delete(ctx, id)
}
