package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/infrastructure/ratelimit"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/utils"
)

// RateLimit throttles requests per client IP on the routes it is attached
// to. Each route gets its own counter scope so login attempts do not eat
// into the general budget.
type RateLimit struct {
	limiter ratelimit.RateLimiter
	scope   string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimit(limiter ratelimit.RateLimiter, scope string, limit int, window time.Duration, logger logger.Interface) *RateLimit {
	return &RateLimit{
		limiter: limiter,
		scope:   scope,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

func (rl *RateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", rl.scope, c.ClientIP())

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit, rl.window)
		if err != nil {
			// A broken limiter backend must not take the whole API down.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
