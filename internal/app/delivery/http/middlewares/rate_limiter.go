package middlewares

import (
	"net"
	"net/http"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket that blocks an IP for blockTime once
// its bucket runs dry. It guards the staff login endpoint.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

// NewRateLimiter allows bursts of requests and refills one token every per.
func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

// LoginRateLimiter builds the login guard from APP_LOGIN_MAX_REQUESTS_PER_MINUTE
// and APP_LOGIN_BLOCK_DURATION_IN_MINUTES.
func (m *Middlewares) LoginRateLimiter() *RateLimiter {
	maxRequests := m.InternalConfig.App.LoginMaxRequestsPerMinute
	if maxRequests <= 0 {
		maxRequests = 5
	}
	blockTime := time.Duration(m.InternalConfig.App.LoginBlockDurationInMinutes) * time.Minute
	return NewRateLimiter(maxRequests, time.Minute/time.Duration(maxRequests), blockTime, m.Log)
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)

		retryAfter, blocked := r.allow(ip)
		if !blocked {
			next.ServeHTTP(w, req)
			return
		}

		utils.LogSecurityEvent(r.log, "login_rate_limited", utils.GetRequestID(req.Context()), "medium",
			zap.String(constvars.LoggingClientIPKey, ip),
		)
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
		utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyLoginAttempts(nil))
	})
}

// allow reports whether ip is blocked and for how long.
func (r *RateLimiter) allow(ip string) (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil.Sub(now), true
		}
		delete(r.blocked, ip)
		delete(r.limiters, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return r.blockTime, true
	}
	return 0, false
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}
