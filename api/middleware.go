package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"marketplace-api/utils"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// requestID reuses a caller-supplied X-Request-ID or generates one, and echoes it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := TimeNow()
		c.Next()

		logger.WithFields(map[string]any{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetString(requestIDKey),
			"client_ip":   c.ClientIP(),
		}).Info("[api] %s %s", c.Request.Method, c.Request.URL.RequestURI())
	}
}

// corsMiddleware allows any method and header. Origins are restricted only
// when an explicit list without "*" is given.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        10 * time.Minute,
	}
	if anyOrigin(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func anyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// rateLimit is a single process-wide token bucket. A zero burst defaults to ceil(rps).
func rateLimit(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = int(math.Ceil(rps))
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, newAPIError("rate limit exceeded"))
			return
		}
		c.Next()
	}
}
