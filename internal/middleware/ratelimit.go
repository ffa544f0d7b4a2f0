package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "nychousing-insights/internal/errors"
	"nychousing-insights/pkg/metrics"
)

// clientLimiter pairs a token bucket with the time it last saw a request,
// so idle entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
}

// NewRateLimiter creates a rate limiter with the given sustained rate and
// burst per client.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    r,
		burst:   b,
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

// RateLimitMiddleware rejects clients that exceed their per-IP request
// budget, using the same error envelope the error handler renders.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			metrics.RateLimitRejectionsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"message": apperrors.MsgRateLimited,
					"code":    apperrors.ErrCodeRateLimited,
				},
			})
			return
		}
		c.Next()
	}
}

// Cleanup evicts limiters that have been idle for over an hour. Run it in
// its own goroutine.
func (rl *RateLimiter) Cleanup() {
	for {
		time.Sleep(10 * time.Minute)
		cutoff := time.Now().Add(-time.Hour)
		rl.mu.Lock()
		for ip, cl := range rl.clients {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
