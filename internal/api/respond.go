package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// Response messages.
const (
	msgInternal         = "Internal server error"
	msgInvalidBody      = "Invalid request body"
	msgNameRequired     = "Name is required"
	msgPersonNotFound   = "Person not found"
	msgPlanetNotFound   = "Planet not found"
	msgUserNotFound     = "User not found"
	msgFavoriteNotFound = "Favorite not found"
)

// writeMsg answers with {"msg": msg}.
func writeMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// writeInternal logs err and answers 500 without exposing it.
func writeInternal(c *gin.Context, err error) {
	loggerFrom(c).Error("request failed", "error", err)
	writeMsg(c, http.StatusInternalServerError, msgInternal)
}

// validationMsg is the 400 message for an entity that failed Validate.
func validationMsg(err error) string {
	var lerr *types.LengthError
	if errors.As(err, &lerr) {
		return lerr.Error()
	}
	return msgNameRequired
}

// pathID parses the :id path parameter. Non-numeric or non-positive ids
// never match an entity, so callers answer them as not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// serializer is implemented by every entity type.
type serializer interface {
	Serialize() map[string]any
}

// serializeAll maps items to their serialized form. The result is never nil
// so empty lists encode as [].
func serializeAll[T serializer](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, it.Serialize())
	}
	return out
}
