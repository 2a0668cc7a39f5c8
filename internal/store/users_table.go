package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// usersTable implements types.UsersTable.
type usersTable struct {
	backend *Backend
}

const selectUser = `SELECT id, email, password, is_active FROM "user"`

// Get retrieves a user by ID.
func (t *usersTable) Get(ctx context.Context, id int64) (*types.User, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	return scanUser(db.QueryRowContext(ctx, d.rebind(selectUser+" WHERE id = ?"), id))
}

// GetByEmail retrieves a user by email.
func (t *usersTable) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	if email == "" {
		return nil, types.ErrInvalidEmail
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	return scanUser(db.QueryRowContext(ctx, d.rebind(selectUser+" WHERE email = ?"), email))
}

// Set inserts u and stores the assigned ID back into it. The password must
// already be hashed (see User.SetPassword).
func (t *usersTable) Set(ctx context.Context, u *types.User) (int64, error) {
	if u == nil {
		return 0, types.ErrInvalidData
	}
	if err := u.Validate(); err != nil {
		return 0, err
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRowContext(ctx,
		d.rebind(`INSERT INTO "user" (email, password, is_active) VALUES (?, ?, ?) RETURNING id`),
		u.Email, u.Password, u.IsActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}
	u.ID = id
	return id, nil
}

// Fetch returns all users ordered by ID.
func (t *usersTable) Fetch(ctx context.Context) ([]*types.User, error) {
	db, _, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, selectUser+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []*types.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}
