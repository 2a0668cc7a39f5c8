package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// Schema DDL. %[1]s is replaced by the dialect's primary key definition.
// "user" is quoted because it is reserved in PostgreSQL.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS "user" (
    id %[1]s,
    email VARCHAR(120) NOT NULL UNIQUE,
    password TEXT NOT NULL,
    is_active BOOLEAN NOT NULL
)`

	createPeople = `CREATE TABLE IF NOT EXISTS people (
    id %[1]s,
    name VARCHAR(100) NOT NULL,
    hair_color VARCHAR(50),
    eye_color VARCHAR(50)
)`

	createPlanets = `CREATE TABLE IF NOT EXISTS planet (
    id %[1]s,
    name VARCHAR(100) NOT NULL,
    climate VARCHAR(50),
    terrain VARCHAR(50)
)`

	createFavorites = `CREATE TABLE IF NOT EXISTS favorite (
    id %[1]s,
    user_id BIGINT NOT NULL REFERENCES "user"(id),
    people_id BIGINT REFERENCES people(id),
    planet_id BIGINT REFERENCES planet(id),
    CHECK ((people_id IS NULL) <> (planet_id IS NULL))
)`
)

// Index DDL.
const (
	idxFavoriteUser       = `CREATE INDEX IF NOT EXISTS idx_favorite_user ON favorite(user_id)`
	idxFavoriteUserPeople = `CREATE UNIQUE INDEX IF NOT EXISTS idx_favorite_user_people ON favorite(user_id, people_id)`
	idxFavoriteUserPlanet = `CREATE UNIQUE INDEX IF NOT EXISTS idx_favorite_user_planet ON favorite(user_id, planet_id)`
)

// tableDDL maps each standard table to its CREATE TABLE statement.
var tableDDL = map[string]string{
	types.TableUsers:     createUsers,
	types.TablePeople:    createPeople,
	types.TablePlanets:   createPlanets,
	types.TableFavorites: createFavorites,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxFavoriteUser,
	idxFavoriteUserPeople,
	idxFavoriteUserPlanet,
}

// applySchema creates missing tables and indexes. Statements run one at a
// time; not every driver accepts several statements per Exec.
func applySchema(db *sql.DB, d dialect) error {
	for _, name := range types.StandardTableNames {
		if _, err := db.Exec(fmt.Sprintf(tableDDL[name], d.primaryKey)); err != nil {
			return fmt.Errorf("creating table %s: %w", name, err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index %s: %w", indexName(ddl), err)
		}
	}
	return nil
}

// indexName extracts the index name from a CREATE INDEX statement.
func indexName(ddl string) string {
	fields := strings.Fields(ddl)
	for i, f := range fields {
		if f == "ON" && i > 0 {
			return fields[i-1]
		}
	}
	return ddl
}
