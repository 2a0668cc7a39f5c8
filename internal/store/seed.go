package store

import (
	"context"
	"errors"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// EnsureUser returns the ID of the user with u.Email, inserting u first if
// no such user exists. created reports whether an insert happened. Seeding
// is idempotent: running it twice leaves a single user.
func EnsureUser(ctx context.Context, users types.UsersTable, u *types.User) (id int64, created bool, err error) {
	existing, err := users.GetByEmail(ctx, u.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return 0, false, err
	}
	id, err = users.Set(ctx, u)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
