package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// favoriteTarget describes one kind of favoritable entity.
type favoriteTarget struct {
	filterKey string
	notFound  string
	added     string
	deleted   string

	exists func(ctx context.Context, s types.Store, id int64) error
	build  func(userID, id int64) *types.Favorite
}

var (
	planetTarget = favoriteTarget{
		filterKey: types.FilterPlanetID,
		notFound:  msgPlanetNotFound,
		added:     "Planet added to favorites",
		deleted:   "Planet favorite deleted",
		exists: func(ctx context.Context, s types.Store, id int64) error {
			_, err := s.Planets().Get(ctx, id)
			return err
		},
		build: types.NewPlanetFavorite,
	}

	personTarget = favoriteTarget{
		filterKey: types.FilterPersonID,
		notFound:  msgPersonNotFound,
		added:     "Person added to favorites",
		deleted:   "Person favorite deleted",
		exists: func(ctx context.Context, s types.Store, id int64) error {
			_, err := s.People().Get(ctx, id)
			return err
		},
		build: types.NewPersonFavorite,
	}
)

// POST /favorite/planet/:id
func (h *handler) addFavoritePlanet(c *gin.Context) { h.addFavorite(c, planetTarget) }

// POST /favorite/people/:id
func (h *handler) addFavoritePerson(c *gin.Context) { h.addFavorite(c, personTarget) }

// DELETE /favorite/planet/:id
func (h *handler) deleteFavoritePlanet(c *gin.Context) { h.deleteFavorite(c, planetTarget) }

// DELETE /favorite/people/:id
func (h *handler) deleteFavoritePerson(c *gin.Context) { h.deleteFavorite(c, personTarget) }

// addFavorite links the current user to the target. Both must exist.
// Repeating the call leaves the single existing favorite in place.
func (h *handler) addFavorite(c *gin.Context, target favoriteTarget) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	id, ok := pathID(c)
	if !ok {
		writeMsg(c, http.StatusNotFound, target.notFound)
		return
	}

	if _, err := h.store.Users().Get(ctx, userID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeMsg(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeInternal(c, err)
		return
	}

	if err := target.exists(ctx, h.store, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeMsg(c, http.StatusNotFound, target.notFound)
			return
		}
		writeInternal(c, err)
		return
	}

	// Adding an existing favorite is a no-op that still succeeds.
	_, err := h.store.Favorites().Set(ctx, target.build(userID, id))
	if err != nil && !errors.Is(err, types.ErrAlreadyFavorite) {
		writeInternal(c, err)
		return
	}
	writeMsg(c, http.StatusOK, target.added)
}

// deleteFavorite removes the current user's favorite of the target.
func (h *handler) deleteFavorite(c *gin.Context, target favoriteTarget) {
	id, ok := pathID(c)
	if !ok {
		writeMsg(c, http.StatusNotFound, msgFavoriteNotFound)
		return
	}

	err := h.store.Favorites().DeleteWhere(c.Request.Context(), map[string]any{
		types.FilterUserID: userIDFrom(c),
		target.filterKey:   id,
	})
	if errors.Is(err, types.ErrNotFound) {
		writeMsg(c, http.StatusNotFound, msgFavoriteNotFound)
		return
	}
	if err != nil {
		writeInternal(c, err)
		return
	}
	writeMsg(c, http.StatusOK, target.deleted)
}
