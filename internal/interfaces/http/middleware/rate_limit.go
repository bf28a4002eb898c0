package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"paylink.backend/internal/domain/errors"
	"paylink.backend/internal/interfaces/http/response"
	"paylink.backend/pkg/logger"
	"paylink.backend/pkg/redis"
)

const (
	// DefaultRateLimit is the number of requests allowed per window per client IP
	DefaultRateLimit = 60
	// DefaultRateWindow is the fixed window size
	DefaultRateWindow = time.Minute
)

// RateLimitMiddleware enforces a fixed-window request limit per client IP
// backed by Redis. If Redis is unavailable the request is allowed through.
func RateLimitMiddleware(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := redis.Incr(c.Request.Context(), key)
		if err != nil {
			logger.GetLogger().Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			if err := redis.Expire(c.Request.Context(), key, window); err != nil {
				logger.GetLogger().Warn("failed to set rate limit window")
			}
		}

		if count > limit {
			response.Error(c, errors.NewAppError(http.StatusTooManyRequests, "Too many requests", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
