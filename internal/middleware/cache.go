package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	responseMetaKey = "response_meta"

	// CacheHeader reports how a page was served: HIT, MISS or BYPASS.
	CacheHeader = "X-Cache"
)

// WithResponseMeta initialises response metadata storage on the request
// context. Handlers read it back with ExtractMeta and pass it to the envelope.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// ProcessingTime stores the elapsed time since start on the response meta and
// returns the map. It must run before the body is written.
func ProcessingTime(c *gin.Context, start time.Time) map[string]interface{} {
	meta := ensureMeta(c)
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	return meta
}

// SetCacheHit reports on the X-Cache header whether the page came from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	if hit {
		c.Header(CacheHeader, "HIT")
	} else {
		c.Header(CacheHeader, "MISS")
	}
}

// SetCacheBypass marks a response that never consulted the cache.
func SetCacheBypass(c *gin.Context) {
	c.Header(CacheHeader, "BYPASS")
}

// ExtractMeta returns the metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return map[string]interface{}{}
	}
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	newMeta := make(map[string]interface{})
	c.Set(responseMetaKey, newMeta)
	return newMeta
}
