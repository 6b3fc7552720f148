package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var RedisClient *redis.Client

// ConnectRedis initializes the Redis client used by the submission rate
// limiter. Redis is optional: when REDIS_ADDRESS is unset the limiter is
// simply not attached.
func ConnectRedis() bool {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		log.Println("REDIS_ADDRESS not set; submission rate limiting disabled")
		return false
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       0,
	})

	if _, err := RedisClient.Ping(Ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis")
	return true
}

// ReportLimitPerDay is the per-address cap on anonymous submissions
func ReportLimitPerDay() int {
	if v := os.Getenv("REPORT_LIMIT_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 10
}
