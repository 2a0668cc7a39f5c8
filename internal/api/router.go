// Package api exposes the holonet store over HTTP/JSON using gin.
// Every handler performs one lookup, insert or filtered delete against the
// store and answers with the entity's serialized form or {"msg": ...}.
package api

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// DefaultUserID is the user that mutating endpoints act on when the request
// names none.
const DefaultUserID int64 = 1

// Options configures the router.
type Options struct {
	// DefaultUserID is used when a request carries no X-User-ID header.
	DefaultUserID int64

	// CORSOrigins restricts cross-origin requests. Empty allows any origin.
	CORSOrigins []string

	Logger *slog.Logger
}

// handler holds the dependencies shared by all route handlers.
type handler struct {
	store  types.Store
	logger *slog.Logger
}

// NewRouter builds the gin engine with middleware and all routes registered.
func NewRouter(store types.Store, opts Options) *gin.Engine {
	if opts.DefaultUserID <= 0 {
		opts.DefaultUserID = DefaultUserID
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Trailing-slash variants are registered as routes instead of redirected.
	r.RedirectTrailingSlash = false

	r.Use(requestID())
	r.Use(requestLogger(opts.Logger))
	r.Use(recovery())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	r.Use(currentUser(opts.DefaultUserID))

	r.NoRoute(func(c *gin.Context) {
		writeMsg(c, http.StatusNotFound, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		writeMsg(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	h := &handler{store: store, logger: opts.Logger}

	r.GET("/", sitemap(r))
	handle(r, http.MethodGet, "/healthz", h.health)
	handle(r, http.MethodGet, "/user", h.hello)

	handle(r, http.MethodGet, "/people", h.listPeople)
	handle(r, http.MethodPost, "/people", h.createPerson)
	handle(r, http.MethodGet, "/person/:id", h.getPerson)

	handle(r, http.MethodGet, "/planets", h.listPlanets)
	handle(r, http.MethodPost, "/planets", h.createPlanet)
	handle(r, http.MethodGet, "/planet/:id", h.getPlanet)

	handle(r, http.MethodGet, "/users", h.listUsers)
	handle(r, http.MethodGet, "/users/favorites", h.listFavorites)

	fav := r.Group("/favorite")
	{
		handle(fav, http.MethodPost, "/planet/:id", h.addFavoritePlanet)
		handle(fav, http.MethodDelete, "/planet/:id", h.deleteFavoritePlanet)
		handle(fav, http.MethodPost, "/people/:id", h.addFavoritePerson)
		handle(fav, http.MethodDelete, "/people/:id", h.deleteFavoritePerson)
	}

	return r
}

// handle registers path both bare and with a trailing slash.
func handle(g gin.IRoutes, method, path string, fn gin.HandlerFunc) {
	g.Handle(method, path, fn)
	g.Handle(method, path+"/", fn)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", headerUserID, headerRequestID},
		ExposeHeaders: []string{"Content-Length", headerRequestID},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// sitemap lists every registered route as "METHOD /path", leaving out the
// trailing-slash aliases.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]string, 0, len(routes))
		for _, rt := range routes {
			if rt.Path != "/" && strings.HasSuffix(rt.Path, "/") {
				continue
			}
			endpoints = append(endpoints, rt.Method+" "+rt.Path)
		}
		sort.Strings(endpoints)
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}

func (h *handler) health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		loggerFrom(c).Error("store ping failed", "error", err)
		writeMsg(c, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) hello(c *gin.Context) {
	writeMsg(c, http.StatusOK, "Hello, this is your GET /user response")
}
