package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// CachedResponse is the envelope stored for a cached read. Body holds the
// response bytes exactly as written, so a hit replays them verbatim.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// KeyFunc derives the request-specific part of a cache key.
type KeyFunc func(c *gin.Context) string

// RequestPathKey keys a cache entry by the full request URI, query included.
func RequestPathKey(c *gin.Context) string {
	return c.Request.URL.RequestURI()
}

// ParamKey keys a cache entry by a route parameter, falling back to the
// request URI when the parameter is empty.
func ParamKey(name string) KeyFunc {
	return func(c *gin.Context) string {
		if v := c.Param(name); v != "" {
			return v
		}
		return RequestPathKey(c)
	}
}

// CachePage wraps GET handlers with read-through caching: serve the stored
// response on a hit, otherwise run the handler and store its output when it
// succeeded. Cache trouble only ever degrades to pass-through; the handler
// result is what the client sees either way. A nil store disables caching.
func CachePage(store contract.ICacheStore, logger usecasecontract.IAppLogger, namespace string, keyFn KeyFunc, ttl time.Duration) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = RequestPathKey
	}
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := namespace + ":" + keyFn(c)

		data, found, err := store.Get(c.Request.Context(), key)
		if err != nil {
			metrics.CacheErrors.WithLabelValues(namespace, "get").Inc()
			logger.Warnf("cache: lookup for '%s' failed, serving uncached: %v", key, err)
		} else if found {
			var cached CachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				metrics.CacheHits.WithLabelValues(namespace).Inc()
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			// Corrupt entry: treat as a miss and let the refill overwrite it.
			logger.Warnf("cache: discarding undecodable entry '%s'", key)
		}
		metrics.CacheMisses.WithLabelValues(namespace).Inc()

		capture := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		status := capture.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		entry, err := json.Marshal(CachedResponse{
			Status:      status,
			ContentType: capture.Header().Get("Content-Type"),
			Body:        capture.body.Bytes(),
		})
		if err != nil {
			logger.Warnf("cache: failed to encode entry '%s': %v", key, err)
			return
		}

		// Populate asynchronously so the client never waits on the store;
		// the detached context outlives the finished request.
		go func() {
			storeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := store.Set(storeCtx, key, entry, ttl); err != nil {
				metrics.CacheErrors.WithLabelValues(namespace, "set").Inc()
				logger.Warnf("cache: failed to store entry '%s': %v", key, err)
			}
		}()
	}
}

// bodyCaptureWriter tees everything written to the response into a buffer so
// the exact payload can be cached after the handler ran.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
