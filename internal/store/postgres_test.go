package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// envTestDatabaseURL names a PostgreSQL database the tests may write to.
const envTestDatabaseURL = "HOLONET_TEST_DATABASE_URL"

func TestPostgresBackend(t *testing.T) {
	url := os.Getenv(envTestDatabaseURL)
	if url == "" {
		t.Skipf("%s not set", envTestDatabaseURL)
	}
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendPostgres, DatabaseURL: url}))
	defer b.Detach()
	require.NoError(t, b.Ping(ctx))

	u := &types.User{Email: "pg-" + t.Name() + "@holonet.local", Password: "hash", IsActive: true}
	userID, _, err := EnsureUser(ctx, b.Users(), u)
	require.NoError(t, err)

	planetID, err := b.Planets().Set(ctx, &types.Planet{Name: "Bespin", Climate: strPtr("temperate")})
	require.NoError(t, err)

	favID, err := b.Favorites().Set(ctx, types.NewPlanetFavorite(userID, planetID))
	require.NoError(t, err)

	_, err = b.Favorites().Set(ctx, types.NewPlanetFavorite(userID, planetID))
	assert.ErrorIs(t, err, types.ErrAlreadyFavorite)

	got, err := b.Favorites().Get(ctx, favID)
	require.NoError(t, err)
	require.NotNil(t, got.Planet)
	assert.Equal(t, "Bespin", got.Planet.Name)

	require.NoError(t, b.Favorites().DeleteWhere(ctx, map[string]any{
		types.FilterUserID:   userID,
		types.FilterPlanetID: planetID,
	}))
	_, err = b.Favorites().Get(ctx, favID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Several pool connections race on the same favorite.
	assertConcurrentAddsKeepOneRow(t, b, userID, planetID)
	require.NoError(t, b.Favorites().DeleteWhere(ctx, map[string]any{
		types.FilterUserID:   userID,
		types.FilterPlanetID: planetID,
	}))
}
