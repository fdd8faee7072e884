package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// cacheWriter tees the response body so a successful payload can be stored
// after the handler runs.
type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ReportCacheMiddleware serves GET report responses from the cache, keyed by
// request path and raw query. Cache failures are logged and the request
// proceeds uncached.
func ReportCacheMiddleware(cache adapter.ReportCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			key += "?" + rawQuery
		}

		payload, ok, err := cache.Get(c.Request.Context(), key)
		if err != nil {
			slog.Warn("Report cache lookup failed", "key", key, "error", err)
		} else if ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		// Only successful responses are worth replaying
		if writer.Status() != http.StatusOK {
			return
		}

		if err := cache.Set(c.Request.Context(), key, writer.body.Bytes(), ttl); err != nil {
			slog.Warn("Report cache store failed", "key", key, "error", err)
		}
	}
}
