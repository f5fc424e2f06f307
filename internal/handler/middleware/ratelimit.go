package middleware

import (
	"net/http"
	"sync"
	"time"

	"miccheck-web/internal/handler/httperr"
	"miccheck-web/internal/pkg/clock"
	"miccheck-web/internal/pkg/config"
	"miccheck-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limited")

type ipLimiter struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	cfg      config.RateLimitConfig
	clock    clock.Clock
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		cfg:      cfg,
		clock:    clk,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			c.Next()
			return
		}
		if !r.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(ip string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	il, ok := r.limiters[ip]
	if !ok {
		il = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(r.cfg.RPS), r.cfg.Burst)}
		r.limiters[ip] = il
	}
	il.last = now
	r.mu.Unlock()

	return il.limiter.AllowN(now, 1)
}

// Prune forgets clients idle for longer than maxIdle and reports how many were dropped.
func (r *RateLimiter) Prune(maxIdle time.Duration) int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for ip, il := range r.limiters {
		if now.Sub(il.last) > maxIdle {
			delete(r.limiters, ip)
			n++
		}
	}
	return n
}
