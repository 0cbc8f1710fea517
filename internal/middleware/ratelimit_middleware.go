package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CraftLedger/craft_api/internal/utils"
)

// Rate limiter for the submission endpoint: each IP gets a fixed number of
// submissions per minute. Certificate reads and static files are unlimited.
type SubmissionRateLimiter struct {
	mu       sync.Mutex
	limit    int
	attempts map[string]*attemptInfo
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewSubmissionRateLimiter constructs a limiter allowing limit submissions
// per IP per minute and starts its background cleanup loop.
func NewSubmissionRateLimiter(limit int) *SubmissionRateLimiter {
	rl := &SubmissionRateLimiter{
		limit:    limit,
		attempts: make(map[string]*attemptInfo),
	}
	go rl.cleanup()
	return rl
}

// Handle rejects requests from IPs that exceed the per-minute budget.
func (r *SubmissionRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			utils.Error(c, 429, "RATE_LIMITED", "Too many submissions, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

// allow checks if IP can make another submission within the current window.
func (r *SubmissionRateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	// Reset if window expired
	if now.Sub(info.firstAt) > time.Minute {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	if info.count >= r.limit {
		return false
	}
	info.count++
	return true
}

func (r *SubmissionRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, info := range r.attempts {
			if now.Sub(info.firstAt) > time.Minute {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}
