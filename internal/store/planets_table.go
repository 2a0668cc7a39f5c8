package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// planetsTable implements types.PlanetsTable.
type planetsTable struct {
	backend *Backend
}

// Get retrieves a planet by ID.
// Returns ErrInvalidID if id is not positive, ErrNotFound if not found.
func (t *planetsTable) Get(ctx context.Context, id int64) (*types.Planet, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		d.rebind("SELECT id, name, climate, terrain FROM planet WHERE id = ?"), id)
	return scanPlanet(row)
}

// Set inserts p and stores the assigned ID back into it.
func (t *planetsTable) Set(ctx context.Context, p *types.Planet) (int64, error) {
	if p == nil {
		return 0, types.ErrInvalidData
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRowContext(ctx,
		d.rebind("INSERT INTO planet (name, climate, terrain) VALUES (?, ?, ?) RETURNING id"),
		p.Name, nullString(p.Climate), nullString(p.Terrain)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting planet: %w", err)
	}
	p.ID = id
	return id, nil
}

// Fetch returns all planets ordered by ID.
func (t *planetsTable) Fetch(ctx context.Context) ([]*types.Planet, error) {
	db, _, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		"SELECT id, name, climate, terrain FROM planet ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying planets: %w", err)
	}
	defer rows.Close()

	planets := []*types.Planet{}
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}
	return planets, rows.Err()
}

func scanPlanet(row rowScanner) (*types.Planet, error) {
	var p types.Planet
	var climate, terrain sql.NullString
	err := row.Scan(&p.ID, &p.Name, &climate, &terrain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning planet: %w", err)
	}
	p.Climate = nullableString(climate)
	p.Terrain = nullableString(terrain)
	return &p, nil
}
