package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the optional cache client from the environment.
// Returns nil when REDIS_ADDR is unset; callers treat a nil client as
// "no cache".
func NewRedisClient() *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	db := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			db = n
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
