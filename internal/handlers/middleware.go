package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

const callerContextKey = "caller"

// authRequired resolves the bearer token from the Authorization header into
// the caller identity and stores it on the request context.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			h.errorResponse(c, http.StatusUnauthorized, "UNAUTHENTICATED", "missing bearer token")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		caller, err := h.services.AuthService.ResolveToken(c.Request.Context(), token)
		if err != nil {
			h.errorResponse(c, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid token")
			c.Abort()
			return
		}

		c.Set(callerContextKey, *caller)
		c.Next()
	}
}

func callerFrom(c *gin.Context) domain.User {
	return c.MustGet(callerContextKey).(domain.User)
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		h.logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP())
	}
}

const (
	rateLimitPerSecond = 50
	rateLimitBurst     = 100
	limiterIdleAfter   = 3 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters keeps one token bucket per client IP. Entries idle longer
// than limiterIdleAfter are evicted so the map stays bounded.
type clientLimiters struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
}

func newClientLimiters() *clientLimiters {
	return &clientLimiters{entries: make(map[string]*limiterEntry)}
}

func (cl *clientLimiters) get(ip string, now time.Time) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	entry, ok := cl.entries[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rateLimitPerSecond), rateLimitBurst)}
		cl.entries[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (cl *clientLimiters) evictIdle(now time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	for ip, entry := range cl.entries {
		if now.Sub(entry.lastSeen) > limiterIdleAfter {
			delete(cl.entries, ip)
		}
	}
}

func (cl *clientLimiters) len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.entries)
}

// rateLimiter applies a per-client token bucket keyed by IP.
func (h *Handler) rateLimiter() gin.HandlerFunc {
	limiters := newClientLimiters()

	go func() {
		ticker := time.NewTicker(limiterIdleAfter)
		defer ticker.Stop()
		for now := range ticker.C {
			limiters.evictIdle(now)
		}
	}()

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP(), time.Now()).Allow() {
			h.errorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}

// parseIDParam reads a uuid path parameter; a malformed id is a client
// error, not a missing resource.
func (h *Handler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", name+" must be a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}
