package types

import (
	"context"
	"errors"
)

// UsersTable provides access to the user table.
type UsersTable interface {
	// Get returns the user with the given ID or ErrNotFound.
	Get(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns the user with the given email or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Set inserts a new user and returns its assigned ID.
	Set(ctx context.Context, u *User) (int64, error)

	// Fetch returns every user ordered by ID.
	Fetch(ctx context.Context) ([]*User, error)
}

// PeopleTable provides access to the people table.
type PeopleTable interface {
	Get(ctx context.Context, id int64) (*Person, error)
	Set(ctx context.Context, p *Person) (int64, error)
	Fetch(ctx context.Context) ([]*Person, error)
}

// PlanetsTable provides access to the planet table.
type PlanetsTable interface {
	Get(ctx context.Context, id int64) (*Planet, error)
	Set(ctx context.Context, p *Planet) (int64, error)
	Fetch(ctx context.Context) ([]*Planet, error)
}

// FavoritesTable provides access to the favorite table. Favorites returned
// by Get and Fetch carry their linked Person or Planet.
type FavoritesTable interface {
	Get(ctx context.Context, id int64) (*Favorite, error)

	// Set inserts a new favorite after validating it. Returns
	// ErrAlreadyFavorite if the user already favorited the same target.
	Set(ctx context.Context, f *Favorite) (int64, error)

	// Fetch returns favorites matching the filter, ordered by ID. Recognized
	// keys are FilterUserID, FilterPersonID and FilterPlanetID with int or
	// int64 values. An empty filter matches all.
	Fetch(ctx context.Context, filter map[string]any) ([]*Favorite, error)

	// DeleteWhere removes the first favorite matching the filter.
	// Returns ErrNotFound if nothing matches and ErrInvalidFilter for an
	// empty filter.
	DeleteWhere(ctx context.Context, filter map[string]any) error
}

// Filter keys for FavoritesTable.
const (
	FilterUserID   = "user_id"
	FilterPersonID = "people_id"
	FilterPlanetID = "planet_id"
)

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter")
)

// Entity errors.
var (
	ErrInvalidName     = errors.New("name is required")
	ErrInvalidEmail    = errors.New("email is required")
	ErrInvalidFavorite = errors.New("favorite must reference exactly one person or planet")
	ErrAlreadyFavorite = errors.New("already in favorites")
)
