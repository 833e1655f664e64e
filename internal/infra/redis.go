package infra

import "github.com/redis/go-redis/v9"

// NewRedis builds a redis client for the override cache.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
