package v1

import (
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/splashcamper/splashcamper-api/internal/pkg/config"
	"github.com/splashcamper/splashcamper-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 10000

// RateLimiter throttles submissions per user, or per client IP for anonymous callers
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	logger   logger.Logger
}

// NewRateLimiter creates a new RateLimiter
func NewRateLimiter(settings config.RateLimitSettings, logger logger.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(settings.RequestsPerSecond),
		burst:    settings.Burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Handler answers 429 once a client exhausts its burst
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.ClientIP()
		if user := CurrentUser(ctx); user != nil {
			key = user.ID
		}

		if !rl.limiter(key).Allow() {
			rl.logger.Warn("rate limit exceeded", "key", key, "path", ctx.FullPath())
			ctx.Header("Retry-After", retryAfter(rl.rate))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "too many requests"})
			return
		}
		ctx.Next()
	}
}

func retryAfter(r rate.Limit) string {
	if r <= 0 {
		return "60"
	}
	return strconv.Itoa(int(math.Ceil(1 / float64(r))))
}
