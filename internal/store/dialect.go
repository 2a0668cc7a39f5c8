package store

import (
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// dialect captures the differences between the supported SQL engines.
// Queries are written with ? placeholders and rebound per dialect.
type dialect struct {
	name   string
	driver string

	// primaryKey is the column definition of an auto-assigned integer id.
	primaryKey string

	// singleWriter limits the pool to one connection so writes to a
	// file database never contend.
	singleWriter bool
}

var dialects = map[string]dialect{
	types.BackendSQLite: {
		name:         types.BackendSQLite,
		driver:       "sqlite",
		primaryKey:   "INTEGER PRIMARY KEY AUTOINCREMENT",
		singleWriter: true,
	},
	types.BackendPostgres: {
		name:       types.BackendPostgres,
		driver:     "pgx",
		primaryKey: "BIGSERIAL PRIMARY KEY",
	},
}

// sqliteURLPrefix is the SQLAlchemy-style prefix of a SQLite database URL.
// sqlite:///relative.db and sqlite:////absolute/path.db are both accepted.
const sqliteURLPrefix = "sqlite:///"

// sqlitePragmas are applied by modernc.org/sqlite on every new connection.
const sqlitePragmas = "?_pragma=foreign_keys(1)"

// dataSource returns the driver DSN for config.
func (d dialect) dataSource(config types.Config) (string, error) {
	if d.name == types.BackendPostgres {
		return config.DatabaseURL, nil
	}

	if config.DatabaseURL != "" {
		if !strings.HasPrefix(config.DatabaseURL, sqliteURLPrefix) {
			return "", types.ErrDatabaseURLUnknown
		}
		path := strings.TrimPrefix(config.DatabaseURL, sqliteURLPrefix)
		if path == "" {
			return "", types.ErrDatabaseURLUnknown
		}
		return path + sqlitePragmas, nil
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, DBFileName) + sqlitePragmas, nil
}

// rebind rewrites ? placeholders into the dialect's bind syntax.
func (d dialect) rebind(query string) string {
	if d.name != types.BackendPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
