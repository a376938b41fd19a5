package users

import "context"

// Repository is collection-level access to the user registry. All mutations
// go through a full read-modify-write cycle, matching the single-value
// storage layout.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Replace(ctx context.Context, users []User) error
}
