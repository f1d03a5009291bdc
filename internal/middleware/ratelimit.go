package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// SubmitRateLimiter limits form submissions per client IP with a sliding
// window. It protects the lead endpoint against scripted resubmission; the
// endpoint itself accepts duplicates from well-behaved clients.
type SubmitRateLimiter struct {
	attempts    map[string][]time.Time
	mutex       sync.RWMutex
	maxAttempts int
	window      time.Duration
}

// NewSubmitRateLimiter creates a new submission rate limiter
func NewSubmitRateLimiter(maxAttempts int, window time.Duration) *SubmitRateLimiter {
	rl := &SubmitRateLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// IsAllowed checks if a submission from the given IP is allowed
func (rl *SubmitRateLimiter) IsAllowed(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	attempts := rl.attempts[ip]

	// Remove old attempts
	var validAttempts []time.Time
	for _, attempt := range attempts {
		if attempt.After(cutoff) {
			validAttempts = append(validAttempts, attempt)
		}
	}

	if len(validAttempts) >= rl.maxAttempts {
		rl.attempts[ip] = validAttempts
		return false
	}

	rl.attempts[ip] = append(validAttempts, now)
	return true
}

// GetTimeUntilAllowed returns the time until the next submission is allowed
func (rl *SubmitRateLimiter) GetTimeUntilAllowed(ip string) time.Duration {
	rl.mutex.RLock()
	defer rl.mutex.RUnlock()

	attempts := rl.attempts[ip]
	if len(attempts) < rl.maxAttempts {
		return 0
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	for _, attempt := range attempts {
		if attempt.After(cutoff) {
			return attempt.Add(rl.window).Sub(now)
		}
	}

	return 0
}

// cleanup removes old entries periodically
func (rl *SubmitRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		now := time.Now()
		cutoff := now.Add(-rl.window)

		for ip, attempts := range rl.attempts {
			var validAttempts []time.Time
			for _, attempt := range attempts {
				if attempt.After(cutoff) {
					validAttempts = append(validAttempts, attempt)
				}
			}

			if len(validAttempts) == 0 {
				delete(rl.attempts, ip)
			} else {
				rl.attempts[ip] = validAttempts
			}
		}
		rl.mutex.Unlock()
	}
}

// SubmitRateLimit provides rate limiting middleware for submission endpoints
func SubmitRateLimit(rateLimiter *SubmitRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only POST requests count against the limit
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := getClientIP(r)

			if !rateLimiter.IsAllowed(ip) {
				retryAfter := rateLimiter.GetTimeUntilAllowed(ip)
				w.Header().Set("Retry-After", retryAfter.Round(time.Second).String())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Zu viele Anfragen. Bitte versuche es später noch einmal.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
