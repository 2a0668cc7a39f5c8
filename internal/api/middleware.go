package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-ID"

	ctxKeyLogger = "logger"
	ctxKeyUserID = "user_id"
)

// requestID tags each request with the caller's X-Request-ID or a new UUID
// and echoes it in the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// requestLogger stores a request-scoped logger in the context and emits one
// record per request once it completes.
func requestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := base.With("request_id", c.GetString(headerRequestID))
		c.Set(ctxKeyLogger, logger)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}

// recovery turns a panic into a logged 500 response.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		loggerFrom(c).Error("panic recovered", "panic", recovered)
		writeMsg(c, http.StatusInternalServerError, msgInternal)
		c.Abort()
	})
}

// currentUser resolves the acting user from X-User-ID, falling back to
// defaultID. It does not authenticate the caller.
func currentUser(defaultID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := defaultID
		if v := c.GetHeader(headerUserID); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil || parsed <= 0 {
				writeMsg(c, http.StatusBadRequest, "Invalid user id")
				c.Abort()
				return
			}
			id = parsed
		}
		c.Set(ctxKeyUserID, id)
		c.Next()
	}
}

// loggerFrom returns the request-scoped logger.
func loggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(ctxKeyLogger); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// userIDFrom returns the acting user resolved by currentUser.
func userIDFrom(c *gin.Context) int64 {
	return c.GetInt64(ctxKeyUserID)
}
