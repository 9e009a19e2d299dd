// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/blog-auth/internal/logger"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 5 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	mu       sync.Mutex
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	if burst <= 0 {
		burst = perMinute
	}
	return &ipRateLimiter{
		rate:  rate.Limit(float64(perMinute) / 60),
		burst: burst,
		now:   time.Now,
	}
}

func (l *ipRateLimiter) get(key string) *rate.Limiter {
	now := l.now()
	v, _ := l.limiters.LoadOrStore(key, &limiterEntry{
		limiter:  rate.NewLimiter(l.rate, l.burst),
		lastSeen: now,
	})
	entry := v.(*limiterEntry)

	entry.mu.Lock()
	entry.lastSeen = now
	entry.mu.Unlock()

	return entry.limiter
}

// sweep drops buckets not used for limiterIdleTTL.
func (l *ipRateLimiter) sweep() {
	cutoff := l.now().Add(-limiterIdleTTL)
	l.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastSeen.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			l.limiters.Delete(key)
		}
		return true
	})
}

// runSweeper sweeps idle buckets every interval until ctx is done.
func (l *ipRateLimiter) runSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// withRateLimit throttles the credential endpoints per client IP. It is a
// pass-through when SERVER_AUTH_RATE_LIMIT is zero. The idle bucket sweep
// stops when ctx is done.
func (h *Handler) withRateLimit(ctx context.Context) func(http.Handler) http.Handler {
	if h.cfg.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := newIPRateLimiter(h.cfg.AuthRateLimit, h.cfg.AuthRateBurst)
	go limiter.runSweeper(ctx, limiterIdleTTL)

	return limiter.middleware
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		lim := l.get(ip)
		if lim.AllowN(l.now(), 1) {
			next.ServeHTTP(w, r)
			return
		}

		res := lim.ReserveN(l.now(), 1)
		delay := res.DelayFrom(l.now())
		res.CancelAt(l.now())

		retryAfter := int(math.Ceil(delay.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}

		logger.FromRequest(r).Warn().Str("ip", ip).Int("retry_after", retryAfter).Msg("rate limit exceeded")
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
	})
}

// clientIP keys on the socket address only. Proxy headers are honoured
// solely through middleware.RealIP, which Init mounts when
// SERVER_TRUSTED_PROXY is set and which rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
