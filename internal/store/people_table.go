package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// peopleTable implements types.PeopleTable.
type peopleTable struct {
	backend *Backend
}

// Get retrieves a person by ID.
// Returns ErrInvalidID if id is not positive, ErrNotFound if not found.
func (t *peopleTable) Get(ctx context.Context, id int64) (*types.Person, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	db, d, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		d.rebind("SELECT id, name, hair_color, eye_color FROM people WHERE id = ?"), id)
	return scanPerson(row)
}

// Set inserts p and stores the assigned ID back into it.
func (t *peopleTable) Set(ctx context.Context, p *types.Person) (int64, error) {
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
		d.rebind("INSERT INTO people (name, hair_color, eye_color) VALUES (?, ?, ?) RETURNING id"),
		p.Name, nullString(p.HairColor), nullString(p.EyeColor)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting person: %w", err)
	}
	p.ID = id
	return id, nil
}

// Fetch returns all people ordered by ID.
func (t *peopleTable) Fetch(ctx context.Context) ([]*types.Person, error) {
	db, _, err := t.backend.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		"SELECT id, name, hair_color, eye_color FROM people ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	people := []*types.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*types.Person, error) {
	var p types.Person
	var hair, eye sql.NullString
	err := row.Scan(&p.ID, &p.Name, &hair, &eye)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	p.HairColor = nullableString(hair)
	p.EyeColor = nullableString(eye)
	return &p, nil
}

// nullableString converts a nullable column into an optional field.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// nullString converts an optional field into a nullable column value.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
