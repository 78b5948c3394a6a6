// middleware/rate_limiter.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/HSouheill/client_desk/models"
)

// LoginPath gets the strict per-IP limit.
const LoginPath = "/api/auth/login"

type endpointLimit struct {
	limit rate.Limit
	burst int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles per client IP, with tighter limits on selected
// routes. An IP that exceeds its limit is blocked for blockDuration.
// Limiters unused for idleTTL are dropped by cleanup.
type RateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*limiterEntry
	blockedIPs     map[string]time.Time
	defaultLimit   endpointLimit
	endpointLimits map[string]endpointLimit
	blockDuration  time.Duration
	idleTTL        time.Duration
	now            func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiters:     make(map[string]*limiterEntry),
		blockedIPs:   make(map[string]time.Time),
		defaultLimit: endpointLimit{limit: rate.Every(100 * time.Millisecond), burst: 20},
		endpointLimits: map[string]endpointLimit{
			// brute force protection
			LoginPath: {limit: rate.Every(2 * time.Second), burst: 5},
		},
		blockDuration: 5 * time.Minute,
		idleTTL:       10 * time.Minute,
		now:           time.Now,
	}
}

// RunCleanup forgets expired blocks and idle limiters every interval until
// ctx is done.
func (r *RateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.cleanup()
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for ip, until := range r.blockedIPs {
		if !now.Before(until) {
			r.unblock(ip)
		}
	}
	for key, entry := range r.limiters {
		if now.Sub(entry.lastSeen) >= r.idleTTL {
			delete(r.limiters, key)
		}
	}
}

// unblock must be called with mu held.
func (r *RateLimiter) unblock(ip string) {
	delete(r.blockedIPs, ip)
	for path := range r.endpointLimits {
		delete(r.limiters, ip+"|"+path)
	}
	delete(r.limiters, ip)
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := r.now()

			r.mu.Lock()
			if until, blocked := r.blockedIPs[ip]; blocked {
				if now.Before(until) {
					r.mu.Unlock()
					return tooManyRequests(c, "IP address blocked due to too many requests", until)
				}
				r.unblock(ip)
			}

			key, lim := ip, r.defaultLimit
			if l, ok := r.endpointLimits[c.Path()]; ok {
				key, lim = ip+"|"+c.Path(), l
			}
			entry, ok := r.limiters[key]
			if !ok {
				entry = &limiterEntry{limiter: rate.NewLimiter(lim.limit, lim.burst)}
				r.limiters[key] = entry
			}
			entry.lastSeen = now

			if !entry.limiter.AllowN(now, 1) {
				until := now.Add(r.blockDuration)
				r.blockedIPs[ip] = until
				r.mu.Unlock()
				return tooManyRequests(c, "Too many requests", until)
			}
			r.mu.Unlock()

			return next(c)
		}
	}
}

func tooManyRequests(c echo.Context, message string, until time.Time) error {
	c.Response().Header().Set("Retry-After", until.UTC().Format(http.TimeFormat))
	return c.JSON(http.StatusTooManyRequests, models.Fail(http.StatusTooManyRequests, message))
}
