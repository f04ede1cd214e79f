package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/thekidkid/clothing-brand/internal/pkg/response"
)

// visitor tracks a token bucket per client key (IP or user id).
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore manages per-key limiters and evicts entries not seen within
// the TTL.
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	ttl      time.Duration
}

func newVisitorStore(rps float64, burst int, ttl time.Duration) *visitorStore {
	s := &visitorStore{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
	go s.cleanupLoop()
	return s
}

func (s *visitorStore) getVisitor(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(s.rps, s.burst)
		s.visitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (s *visitorStore) cleanupLoop() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for key, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.ttl {
				delete(s.visitors, key)
			}
		}
		s.mu.Unlock()
	}
}

const visitorTTL = 3 * time.Minute

// RateLimitByIP enforces a token bucket per client IP.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	store := newVisitorStore(rps, burst, visitorTTL)

	return func(c *gin.Context) {
		if !store.getVisitor(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByUser enforces a token bucket per authenticated user, falling
// back to the client IP when the request carries no identity.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	store := newVisitorStore(rps, burst, visitorTTL)

	return func(c *gin.Context) {
		key := c.GetString("user_id_validated")
		if key == "" {
			key = c.GetString("session_id")
		}
		if key == "" {
			key = c.ClientIP()
		}

		if !store.getVisitor(key).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
