package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// favoritesTable implements types.FavoritesTable.
type favoritesTable struct {
	backend *Backend
}

// selectFavorites joins each favorite with its linked person and planet so
// a single query hydrates the whole result.
const selectFavorites = `SELECT f.id, f.user_id, f.people_id, f.planet_id,
    p.id, p.name, p.hair_color, p.eye_color,
    pl.id, pl.name, pl.climate, pl.terrain
FROM favorite f
LEFT JOIN people p ON p.id = f.people_id
LEFT JOIN planet pl ON pl.id = f.planet_id`

// favoriteFilterKeys lists the accepted filter keys in the order their
// conditions are emitted.
var favoriteFilterKeys = []string{
	types.FilterUserID,
	types.FilterPersonID,
	types.FilterPlanetID,
}

// Get retrieves a favorite by ID with its linked person or planet.
func (t *favoritesTable) Get(ctx context.Context, id int64) (*types.Favorite, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	return scanFavorite(db.QueryRowContext(ctx, d.rebind(selectFavorites+" WHERE f.id = ?"), id))
}

// Set validates and inserts f, storing the assigned ID back into it.
// Returns ErrAlreadyFavorite if the user already has the same target. The
// unique indexes decide that inside the INSERT, so concurrent adds of the
// same favorite yield one row and ErrAlreadyFavorite for the rest.
func (t *favoritesTable) Set(ctx context.Context, f *types.Favorite) (int64, error) {
	if f == nil {
		return 0, types.ErrInvalidData
	}
	if err := f.Validate(); err != nil {
		return 0, err
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRowContext(ctx,
		d.rebind("INSERT INTO favorite (user_id, people_id, planet_id) VALUES (?, ?, ?) ON CONFLICT DO NOTHING RETURNING id"),
		f.UserID, nullInt64(f.PersonID), nullInt64(f.PlanetID)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, types.ErrAlreadyFavorite
	}
	if err != nil {
		return 0, fmt.Errorf("inserting favorite: %w", err)
	}
	f.ID = id
	return id, nil
}

// Fetch returns favorites matching the filter ordered by ID.
func (t *favoritesTable) Fetch(ctx context.Context, filter map[string]any) ([]*types.Favorite, error) {
	conditions, args, err := favoriteConditions(filter, "f.")
	if err != nil {
		return nil, err
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}

	query := selectFavorites
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY f.id"

	rows, err := db.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*types.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// DeleteWhere removes the lowest-ID favorite matching the filter.
func (t *favoritesTable) DeleteWhere(ctx context.Context, filter map[string]any) error {
	if len(filter) == 0 {
		return types.ErrInvalidFilter
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return err
	}

	id, err := t.firstID(ctx, db, d, filter)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, d.rebind("DELETE FROM favorite WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// firstID returns the lowest favorite ID matching filter, or ErrNotFound.
func (t *favoritesTable) firstID(ctx context.Context, db *sql.DB, d dialect, filter map[string]any) (int64, error) {
	conditions, args, err := favoriteConditions(filter, "")
	if err != nil {
		return 0, err
	}
	query := "SELECT id FROM favorite"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id LIMIT 1"

	var id int64
	err = db.QueryRowContext(ctx, d.rebind(query), args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("finding favorite: %w", err)
	}
	return id, nil
}

// favoriteConditions turns a filter into SQL conditions on columns prefixed
// with prefix. Unknown keys and non-integer values yield ErrInvalidFilter.
func favoriteConditions(filter map[string]any, prefix string) ([]string, []any, error) {
	for key := range filter {
		if !isFavoriteFilterKey(key) {
			return nil, nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
	}

	var conditions []string
	var args []any
	for _, key := range favoriteFilterKeys {
		v, ok := filter[key]
		if !ok {
			continue
		}
		id, ok := toInt64(v)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s must be an integer", types.ErrInvalidFilter, key)
		}
		conditions = append(conditions, prefix+key+" = ?")
		args = append(args, id)
	}
	return conditions, args, nil
}

func isFavoriteFilterKey(key string) bool {
	for _, k := range favoriteFilterKeys {
		if k == key {
			return true
		}
	}
	return false
}

// toInt64 converts the integer kinds accepted in filters.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}

func scanFavorite(row rowScanner) (*types.Favorite, error) {
	var f types.Favorite
	var personRef, planetRef sql.NullInt64
	var personID, planetID sql.NullInt64
	var personName, hair, eye sql.NullString
	var planetName, climate, terrain sql.NullString

	err := row.Scan(&f.ID, &f.UserID, &personRef, &planetRef,
		&personID, &personName, &hair, &eye,
		&planetID, &planetName, &climate, &terrain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning favorite: %w", err)
	}

	f.PersonID = nullableInt64(personRef)
	f.PlanetID = nullableInt64(planetRef)
	if personID.Valid {
		f.Person = &types.Person{
			ID:        personID.Int64,
			Name:      personName.String,
			HairColor: nullableString(hair),
			EyeColor:  nullableString(eye),
		}
	}
	if planetID.Valid {
		f.Planet = &types.Planet{
			ID:      planetID.Int64,
			Name:    planetName.String,
			Climate: nullableString(climate),
			Terrain: nullableString(terrain),
		}
	}
	return &f, nil
}

func nullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func nullableInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
