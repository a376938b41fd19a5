package messages

import "context"

// Repository is collection-level access to the message store, same
// read-modify-write shape as the user registry.
type Repository interface {
	List(ctx context.Context) ([]Message, error)
	Replace(ctx context.Context, msgs []Message) error
}
