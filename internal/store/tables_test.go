package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

func TestPeopleTable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "set assigns id and get returns submitted fields",
			check: func(t *testing.T, b *Backend) {
				p := &types.Person{Name: "Luke", HairColor: strPtr("blond"), EyeColor: strPtr("blue")}
				id, err := b.People().Set(ctx, p)
				require.NoError(t, err)
				assert.Positive(t, id)
				assert.Equal(t, id, p.ID)

				got, err := b.People().Get(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, p, got)
			},
		},
		{
			name: "optional fields round-trip as nil",
			check: func(t *testing.T, b *Backend) {
				id, err := b.People().Set(ctx, &types.Person{Name: "R2-D2"})
				require.NoError(t, err)

				got, err := b.People().Get(ctx, id)
				require.NoError(t, err)
				assert.Nil(t, got.HairColor)
				assert.Nil(t, got.EyeColor)
			},
		},
		{
			name: "set with overlong name persists nothing",
			check: func(t *testing.T, b *Backend) {
				_, err := b.People().Set(ctx, &types.Person{Name: strings.Repeat("x", types.MaxNameLen+1)})
				assert.ErrorIs(t, err, types.ErrFieldTooLong)

				all, err := b.People().Fetch(ctx)
				require.NoError(t, err)
				assert.Empty(t, all)
			},
		},
		{
			name: "set without name persists nothing",
			check: func(t *testing.T, b *Backend) {
				_, err := b.People().Set(ctx, &types.Person{HairColor: strPtr("black")})
				assert.ErrorIs(t, err, types.ErrInvalidName)

				all, err := b.People().Fetch(ctx)
				require.NoError(t, err)
				assert.Empty(t, all)
			},
		},
		{
			name: "get missing id returns ErrNotFound",
			check: func(t *testing.T, b *Backend) {
				_, err := b.People().Get(ctx, 999)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "get non-positive id returns ErrInvalidID",
			check: func(t *testing.T, b *Backend) {
				_, err := b.People().Get(ctx, 0)
				assert.ErrorIs(t, err, types.ErrInvalidID)
			},
		},
		{
			name: "fetch returns all in id order",
			check: func(t *testing.T, b *Backend) {
				for _, name := range []string{"Luke", "Leia", "Han"} {
					_, err := b.People().Set(ctx, &types.Person{Name: name})
					require.NoError(t, err)
				}
				all, err := b.People().Fetch(ctx)
				require.NoError(t, err)
				require.Len(t, all, 3)
				assert.Equal(t, "Luke", all[0].Name)
				assert.Equal(t, "Han", all[2].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, setupBackend(t))
		})
	}
}

func TestPlanetsTable(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	empty, err := b.Planets().Fetch(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	p := &types.Planet{Name: "Tatooine", Climate: strPtr("arid"), Terrain: strPtr("desert")}
	id, err := b.Planets().Set(ctx, p)
	require.NoError(t, err)

	got, err := b.Planets().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "arid", *got.Climate)
	assert.Equal(t, "desert", *got.Terrain)

	_, err = b.Planets().Set(ctx, &types.Planet{})
	assert.ErrorIs(t, err, types.ErrInvalidName)

	_, err = b.Planets().Get(ctx, id+1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUsersTable(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	u := &types.User{Email: "leia@rebels.org", IsActive: true}
	require.NoError(t, u.SetPassword("alderaan"))
	id, err := b.Users().Set(ctx, u)
	require.NoError(t, err)

	got, err := b.Users().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "leia@rebels.org", got.Email)
	assert.True(t, got.IsActive)
	assert.Equal(t, u.Password, got.Password)

	byEmail, err := b.Users().GetByEmail(ctx, "leia@rebels.org")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	_, err = b.Users().GetByEmail(ctx, "vader@empire.gov")
	assert.ErrorIs(t, err, types.ErrNotFound)

	dup := &types.User{Email: "leia@rebels.org", Password: "x"}
	_, err = b.Users().Set(ctx, dup)
	assert.Error(t, err, "email is unique")

	_, err = b.Users().Set(ctx, &types.User{Password: "x"})
	assert.ErrorIs(t, err, types.ErrInvalidEmail)

	all, err := b.Users().Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	u := &types.User{Email: "admin@holonet.local", Password: "hash", IsActive: true}
	id, created, err := EnsureUser(ctx, b.Users(), u)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := EnsureUser(ctx, b.Users(), &types.User{Email: "admin@holonet.local", Password: "other"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)

	all, err := b.Users().Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
