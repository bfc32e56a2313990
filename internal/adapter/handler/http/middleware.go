package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/domain"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const authorizationPayloadKey = "authorization_payload"

// AuthMiddleware verifies the bearer token and makes sure the caller has a
// local account before any handler runs.
func AuthMiddleware(tokenService ports.TokenService, profiles ports.ProfileService, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
			logger.Warn("Missing or malformed authorization header", map[string]interface{}{
				"ip":   c.ClientIP(),
				"path": c.FullPath(),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := profiles.EnsureUser(c.Request.Context(), payload.CurrentUser()); err != nil {
			handleServiceError(c, logger, err, "load account")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := getAuthPayload(c, authorizationPayloadKey)
		if !ok {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if payload.Role != domain.Admin {
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}

// currentUser answers 401 itself when no caller is attached to the request.
func currentUser(c *gin.Context, logger ports.LoggerPort) (domain.CurrentUser, bool) {
	payload, ok := getAuthPayload(c, authorizationPayloadKey)
	if !ok {
		logger.Warn("Unauthorized access attempt", map[string]interface{}{
			"ip":   c.ClientIP(),
			"path": c.FullPath(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return domain.CurrentUser{}, false
	}
	return payload.CurrentUser(), true
}

const limiterIdleTTL = 30 * time.Minute

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[ip]
	if !ok {
		l.sweep(now)
		e = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = now
	return e.limiter.AllowN(now, 1)
}

// sweep drops buckets idle for longer than limiterIdleTTL. Called with mu held.
func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, e := range l.entries {
		if now.Sub(e.lastUse) > limiterIdleTTL {
			delete(l.entries, ip)
		}
	}
}

func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			newErrorResponse(c, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		c.Next()
	}
}
