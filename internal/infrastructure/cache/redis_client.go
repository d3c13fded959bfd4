package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for addr, or nil when addr is empty or the
// server does not answer a ping. Callers fall back to in-process state.
func ConnectRedis(ctx context.Context, addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[cache][redis] connection failed addr=%s err=%v; using in-memory rate limiting", addr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[cache][redis] connected addr=%s", addr)
	return client
}
