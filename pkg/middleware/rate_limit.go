package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"pullup-club/pkg/errutil"
)

// RateLimitMiddleware counts requests per route and caller in fixed windows.
// A nil client disables limiting.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || limit <= 0 {
			c.Next()
			return
		}

		caller, exists := c.Get(ContextUserID)
		if !exists {
			caller = c.ClientIP()
		}
		key := fmt.Sprintf("rate_limit:%s:%s:%v", c.Request.Method, c.FullPath(), caller)

		ctx := c.Request.Context()
		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			errutil.Respond(c, errutil.StoreUnavailable(err))
			return
		}

		if incr.Val() > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":  "RateLimited",
				"error": "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
