package middleware

import (
	"net/http"
	"sync"
	"time"
)

const (
	rateLimitWindow     = time.Minute
	rateLimitMaxIP      = 200
	rateLimitMaxSession = 100
)

type rateLimiter struct {
	mu     sync.Mutex
	times  map[string][]time.Time
	max    int
	window time.Duration
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{times: make(map[string][]time.Time), max: max, window: window}
}

func (r *rateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-r.window)
	slice := r.times[key]
	i := 0
	for _, t := range slice {
		if t.After(cutoff) {
			slice[i] = t
			i++
		}
	}
	slice = slice[:i]
	if len(slice) >= r.max {
		return false
	}
	r.times[key] = append(slice, now)
	return true
}

var (
	apiRateByIP      = newRateLimiter(rateLimitMaxIP, rateLimitWindow)
	apiRateBySession = newRateLimiter(rateLimitMaxSession, rateLimitWindow)
)

// RateLimitAPI limits /api requests per IP and per session (sliding window).
// 429 on excess.
func RateLimitAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if x := r.Header.Get("X-Real-Ip"); x != "" {
			ip = x
		} else if x := r.Header.Get("X-Forwarded-For"); x != "" {
			ip = x
		}
		if !apiRateByIP.allow(ip) {
			deny(w, r, http.StatusTooManyRequests, "tooManyRequests")
			return
		}
		if sessionID := GetSessionID(r.Context()); sessionID != "" {
			if !apiRateBySession.allow("s:" + sessionID) {
				deny(w, r, http.StatusTooManyRequests, "tooManyRequests")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
