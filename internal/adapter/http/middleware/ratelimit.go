package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"roads_authority/pkg"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is a fixed-window counter shared by every API instance.
// Redis errors fail open.
type RedisLimiter struct {
	client redis.Scripter
	script *redis.Script
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.Scripter, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(fixedWindowScript),
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil || key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + ":" + key}, ttl, l.limit).Int64()
	if err != nil {
		log.Printf("[ratelimit][redis] script failed key=%s err=%v", key, err)
		return true
	}
	return allowed == 1
}

// MemoryLimiter keeps one token bucket per key, refilled so that limit
// requests are available per window.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*visitor
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// maxTrackedKeys bounds the bucket map; idle buckets are dropped past it.
const maxTrackedKeys = 10000

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &MemoryLimiter{
		buckets: make(map[string]*visitor),
		limit:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if len(l.buckets) >= maxTrackedKeys {
		for k, v := range l.buckets {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.buckets, k)
			}
		}
	}
	v, ok := l.buckets[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit rejects requests over the limit with 429. keyFn defaults to the
// client IP.
func RateLimit(limiter Limiter, keyFn func(*gin.Context) string) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = func(c *gin.Context) string { return c.ClientIP() }
	}
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		key := keyFn(c)
		if key != "" && !limiter.Allow(c.Request.Context(), key) {
			log.Printf("[ratelimit][http] rejected path=%s key=%s", c.FullPath(), key)
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "too many requests, try again later", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
