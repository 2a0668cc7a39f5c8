package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

func TestRebind(t *testing.T) {
	query := "SELECT id FROM favorite WHERE user_id = ? AND planet_id = ?"

	assert.Equal(t, query, dialects[types.BackendSQLite].rebind(query))
	assert.Equal(t,
		"SELECT id FROM favorite WHERE user_id = $1 AND planet_id = $2",
		dialects[types.BackendPostgres].rebind(query))
}

func TestDataSource(t *testing.T) {
	sqlite := dialects[types.BackendSQLite]
	postgres := dialects[types.BackendPostgres]

	tests := []struct {
		name    string
		d       dialect
		config  types.Config
		want    string
		wantErr error
	}{
		{
			name:   "sqlite file under data dir",
			d:      sqlite,
			config: types.Config{Backend: types.BackendSQLite, DataDir: "/var/lib/holonet"},
			want:   filepath.Join("/var/lib/holonet", DBFileName) + sqlitePragmas,
		},
		{
			name:   "sqlite defaults to current directory",
			d:      sqlite,
			config: types.Config{Backend: types.BackendSQLite},
			want:   filepath.Join(".", DBFileName) + sqlitePragmas,
		},
		{
			name:   "sqlite absolute url",
			d:      sqlite,
			config: types.Config{Backend: types.BackendSQLite, DatabaseURL: "sqlite:////tmp/test.db"},
			want:   "/tmp/test.db" + sqlitePragmas,
		},
		{
			name:   "sqlite relative url",
			d:      sqlite,
			config: types.Config{Backend: types.BackendSQLite, DatabaseURL: "sqlite:///test.db"},
			want:   "test.db" + sqlitePragmas,
		},
		{
			name:    "sqlite url without path",
			d:       sqlite,
			config:  types.Config{Backend: types.BackendSQLite, DatabaseURL: "sqlite:///"},
			wantErr: types.ErrDatabaseURLUnknown,
		},
		{
			name:   "postgres passes url through",
			d:      postgres,
			config: types.Config{Backend: types.BackendPostgres, DatabaseURL: "postgres://u:p@db:5432/holonet"},
			want:   "postgres://u:p@db:5432/holonet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.dataSource(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexName(t *testing.T) {
	assert.Equal(t, "idx_favorite_user_planet", indexName(idxFavoriteUserPlanet))
}
