package middlewares

import (
	"net/http"
	"os"
	"time"

	"campusfix-be/config"

	"github.com/gin-gonic/gin"
)

// ReportRateLimiter caps anonymous submissions per client IP over a 24h
// window using Redis INCR + TTL. Reporters carry no identity, so the client
// address is the only handle available to throttle on.
func ReportRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not determine client address"})
			c.Abort()
			return
		}

		ctx := config.Ctx
		queuePrefix := os.Getenv("REDIS_QUEUE_FOR_REPORT_LIMIT")
		if queuePrefix == "" {
			queuePrefix = "report-limit"
		}

		// Individual key per reporting address
		clientKey := queuePrefix + ":" + clientIP

		count, err := config.RedisClient.Incr(ctx, clientKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, clientKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, clientKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
