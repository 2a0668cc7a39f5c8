package types

import (
	"context"
	"errors"
)

// Store defines the interface for backend-agnostic storage access.
// Callers attach to a backend, use the typed tables, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config and
	// applies the schema. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table operations return ErrStoreDetached.
	Detach() error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Users() UsersTable
	People() PeopleTable
	Planets() PlanetsTable
	Favorites() FavoritesTable
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
