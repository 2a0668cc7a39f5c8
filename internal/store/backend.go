// Package store implements the relational storage backend for holonet.
// SQLite (modernc.org/sqlite) is the default file-based store; PostgreSQL
// (pgx) is selected by a postgres connection string.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// DBFileName is the SQLite database file created under the data directory.
const DBFileName = "holonet.db"

// Backend implements types.Store over database/sql.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	dialect  dialect

	users     *usersTable
	people    *peopleTable
	planets   *planetsTable
	favorites *favoritesTable
}

// NewBackend creates a new backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	b := &Backend{}
	b.users = &usersTable{backend: b}
	b.people = &peopleTable{backend: b}
	b.planets = &planetsTable{backend: b}
	b.favorites = &favoritesTable{backend: b}
	return b
}

// Attach opens the database described by config and applies the schema.
// For SQLite without a database URL, DataDir is created if needed and the
// database lives in DataDir/holonet.db. Existing data is kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	d := dialects[config.Backend]
	if config.Backend == types.BackendSQLite && config.DatabaseURL == "" {
		dataDir := config.DataDir
		if dataDir == "" {
			dataDir = "."
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn, err := d.dataSource(config)
	if err != nil {
		return err
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", config.Backend, err)
	}
	if d.singleWriter {
		db.SetMaxOpenConns(1)
	}

	if err := applySchema(db, d); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	b.db = db
	b.dialect = d
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database connection. After Detach, all table operations
// return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Ping verifies the database connection is alive.
func (b *Backend) Ping(ctx context.Context) error {
	db, _, err := b.conn()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (b *Backend) Users() types.UsersTable         { return b.users }
func (b *Backend) People() types.PeopleTable       { return b.people }
func (b *Backend) Planets() types.PlanetsTable     { return b.planets }
func (b *Backend) Favorites() types.FavoritesTable { return b.favorites }

// conn returns the open database and its dialect, or ErrStoreDetached.
func (b *Backend) conn() (*sql.DB, dialect, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, dialect{}, types.ErrStoreDetached
	}
	return b.db, b.dialect, nil
}
