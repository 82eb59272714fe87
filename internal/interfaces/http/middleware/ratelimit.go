package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk/internal/infrastructure/ratelimit"
	"replydesk/internal/shared/logger"
	"replydesk/internal/shared/utils"
)

// LoginRateLimit throttles login attempts per source IP. When the limiter
// backend is down the request passes; blocking all logins on a Redis outage
// would be worse than briefly losing throttling.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("login rate limit exceeded", "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
