package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestPersonSerialize(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   map[string]any
	}{
		{
			name:   "all fields set",
			person: Person{ID: 1, Name: "Luke", HairColor: strPtr("blond"), EyeColor: strPtr("blue")},
			want:   map[string]any{"id": int64(1), "name": "Luke", "hair_color": "blond", "eye_color": "blue"},
		},
		{
			name:   "optional fields unset serialize as nil",
			person: Person{ID: 2, Name: "R2-D2"},
			want:   map[string]any{"id": int64(2), "name": "R2-D2", "hair_color": nil, "eye_color": nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.person.Serialize())
		})
	}
}

func TestPlanetSerializeUsesClimateAndTerrain(t *testing.T) {
	p := Planet{ID: 5, Name: "Tatooine", Climate: strPtr("arid"), Terrain: strPtr("desert")}
	got := p.Serialize()

	assert.Equal(t, "arid", got["climate"])
	assert.Equal(t, "desert", got["terrain"])
	assert.NotContains(t, got, "hair_color")
	assert.NotContains(t, got, "eye_color")
}

func TestValidateName(t *testing.T) {
	assert.ErrorIs(t, (&Person{}).Validate(), ErrInvalidName)
	assert.ErrorIs(t, (&Planet{}).Validate(), ErrInvalidName)
	assert.NoError(t, (&Person{Name: "Leia"}).Validate())
	assert.NoError(t, (&Planet{Name: "Alderaan"}).Validate())
}

func TestValidateLength(t *testing.T) {
	long := func(n int) *string { s := strings.Repeat("x", n); return &s }

	tests := []struct {
		name    string
		entity  interface{ Validate() error }
		wantErr string
	}{
		{"person name at limit", &Person{Name: *long(MaxNameLen)}, ""},
		{"person name over limit", &Person{Name: *long(MaxNameLen + 1)}, "name must be at most 100 characters"},
		{"person multibyte name at limit", &Person{Name: strings.Repeat("é", MaxNameLen)}, ""},
		{"person hair color over limit", &Person{Name: "Chewbacca", HairColor: long(MaxColorLen + 1)}, "hair_color must be at most 50 characters"},
		{"person eye color over limit", &Person{Name: "Chewbacca", EyeColor: long(MaxColorLen + 1)}, "eye_color must be at most 50 characters"},
		{"planet name over limit", &Planet{Name: *long(MaxNameLen + 1)}, "name must be at most 100 characters"},
		{"planet climate at limit", &Planet{Name: "Hoth", Climate: long(MaxColorLen)}, ""},
		{"planet terrain over limit", &Planet{Name: "Hoth", Terrain: long(MaxColorLen + 1)}, "terrain must be at most 50 characters"},
		{"user email over limit", &User{Email: *long(MaxEmailLen + 1), Password: "x"}, "email must be at most 120 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrFieldTooLong)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 1, Email: "luke@rebels.org", Password: "hash", IsActive: true}

	data, err := json.Marshal(u.Serialize())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"email":"luke@rebels.org"}`, string(data))
}

func TestUserSetPassword(t *testing.T) {
	var u User
	assert.ErrorIs(t, u.SetPassword(""), ErrInvalidData)

	require.NoError(t, u.SetPassword("use-the-force"))
	assert.NotEqual(t, "use-the-force", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("use-the-force")))
}

func TestUserValidate(t *testing.T) {
	assert.ErrorIs(t, (&User{Password: "x"}).Validate(), ErrInvalidEmail)
	assert.ErrorIs(t, (&User{Email: "a@b.c"}).Validate(), ErrInvalidData)
	assert.NoError(t, (&User{Email: "a@b.c", Password: "x"}).Validate())
}

func TestFavoriteValidate(t *testing.T) {
	one := int64(1)
	tests := []struct {
		name    string
		fav     *Favorite
		wantErr error
	}{
		{"person favorite", NewPersonFavorite(1, 3), nil},
		{"planet favorite", NewPlanetFavorite(1, 5), nil},
		{"no target", &Favorite{UserID: 1}, ErrInvalidFavorite},
		{"both targets", &Favorite{UserID: 1, PersonID: &one, PlanetID: &one}, ErrInvalidFavorite},
		{"missing user", NewPlanetFavorite(0, 5), ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fav.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteSerialize(t *testing.T) {
	t.Run("linked planet is serialized, missing person is null", func(t *testing.T) {
		f := NewPlanetFavorite(1, 5)
		f.ID = 9
		f.Planet = &Planet{ID: 5, Name: "Tatooine"}

		data, err := json.Marshal(f.Serialize())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": 9,
			"user_id": 1,
			"people": null,
			"planet": {"id": 5, "name": "Tatooine", "climate": null, "terrain": null}
		}`, string(data))
	})

	t.Run("linked person is serialized, missing planet is null", func(t *testing.T) {
		f := NewPersonFavorite(1, 3)
		f.ID = 10
		f.Person = &Person{ID: 3, Name: "Han", HairColor: strPtr("brown")}

		got := f.Serialize()
		assert.Nil(t, got["planet"])
		assert.Equal(t, map[string]any{"id": int64(3), "name": "Han", "hair_color": "brown", "eye_color": nil}, got["people"])
	})
}
