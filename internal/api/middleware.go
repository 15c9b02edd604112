package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request at a level matching its status.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"dur", time.Since(start).Round(time.Microsecond),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", append(kv, "err", c.Errors.String())...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", kv...)
		default:
			logger.Debug("request", kv...)
		}
	}
}

// cors allows any origin, as the browser client is served separately.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
