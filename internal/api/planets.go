package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// createPlanetRequest is the body of POST /planets.
type createPlanetRequest struct {
	Name    string  `json:"name"`
	Climate *string `json:"climate"`
	Terrain *string `json:"terrain"`
}

func (r createPlanetRequest) planet() (*types.Planet, error) {
	p := &types.Planet{Name: r.Name, Climate: r.Climate, Terrain: r.Terrain}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// GET /planets
func (h *handler) listPlanets(c *gin.Context) {
	planets, err := h.store.Planets().Fetch(c.Request.Context())
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeAll(planets))
}

// GET /planet/:id
func (h *handler) getPlanet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeMsg(c, http.StatusNotFound, msgPlanetNotFound)
		return
	}
	p, err := h.store.Planets().Get(c.Request.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		writeMsg(c, http.StatusNotFound, msgPlanetNotFound)
		return
	}
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Serialize())
}

// POST /planets
func (h *handler) createPlanet(c *gin.Context) {
	var req createPlanetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeMsg(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	p, err := req.planet()
	if err != nil {
		writeMsg(c, http.StatusBadRequest, validationMsg(err))
		return
	}
	if _, err := h.store.Planets().Set(c.Request.Context(), p); err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, p.Serialize())
}
