package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// createPersonRequest is the body of POST /people.
type createPersonRequest struct {
	Name      string  `json:"name"`
	HairColor *string `json:"hair_color"`
	EyeColor  *string `json:"eye_color"`
}

func (r createPersonRequest) person() (*types.Person, error) {
	p := &types.Person{Name: r.Name, HairColor: r.HairColor, EyeColor: r.EyeColor}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// GET /people
func (h *handler) listPeople(c *gin.Context) {
	people, err := h.store.People().Fetch(c.Request.Context())
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, serializeAll(people))
}

// GET /person/:id
func (h *handler) getPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeMsg(c, http.StatusNotFound, msgPersonNotFound)
		return
	}
	p, err := h.store.People().Get(c.Request.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		writeMsg(c, http.StatusNotFound, msgPersonNotFound)
		return
	}
	if err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, p.Serialize())
}

// POST /people
func (h *handler) createPerson(c *gin.Context) {
	var req createPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeMsg(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	p, err := req.person()
	if err != nil {
		writeMsg(c, http.StatusBadRequest, validationMsg(err))
		return
	}
	if _, err := h.store.People().Set(c.Request.Context(), p); err != nil {
		writeInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, p.Serialize())
}
