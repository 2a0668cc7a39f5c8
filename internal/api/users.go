package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// GET /users
func (h *handler) listUsers(c *gin.Context) {
	users, err := h.store.Users().Fetch(c.Request.Context())
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeAll(users))
}

// GET /users/favorites
func (h *handler) listFavorites(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFrom(c)

	if _, err := h.store.Users().Get(ctx, userID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			writeMsg(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		writeInternal(c, err)
		return
	}

	favorites, err := h.store.Favorites().Fetch(ctx, map[string]any{types.FilterUserID: userID})
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeAll(favorites))
}
