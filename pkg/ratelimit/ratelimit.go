// Package ratelimit provides per-client token-bucket limiting for gin routes.
package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key (client IP).
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	rate     rate.Limit
	burst    int
	log      logrus.FieldLogger
}

// New creates a limiter allowing rps requests per second with the given burst.
func New(rps float64, burst int, log logrus.FieldLogger) *Limiter {
	return &Limiter{
		limiters: make(map[string]*entry),
		rate:     rate.Limit(rps),
		burst:    burst,
		log:      log,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = time.Now()
	return e.limiter
}

// Allow reports whether key may proceed now.
func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

// Middleware rejects requests over the limit with 429.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !l.Allow(key) {
			l.log.WithFields(logrus.Fields{
				"ip":   key,
				"path": c.Request.URL.Path,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later"})
			return
		}
		c.Next()
	}
}

// Cleanup drops buckets idle for longer than maxIdle.
func (l *Limiter) Cleanup(maxIdle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (l *Limiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Cleanup(interval)
			case <-stop:
				return
			}
		}
	}()
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
