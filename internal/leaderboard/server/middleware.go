package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

// getLimiter returns the rate limiter for a client key (usually its IP).
func (s *Server) getLimiter(key string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	if lim, ok := s.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(s.cfg.RateLimitRPS)), s.cfg.RateLimitBurst)
	s.limiters[key] = lim
	return lim
}

// rateLimitMiddleware enforces per-client submission limits.
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !s.getLimiter(key).Allow() {
			s.logger.Warn("rate limited", "client", key, requestIDKey, c.GetString(requestIDKey))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware reuses the caller's request ID or assigns a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)
		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP(),
			requestIDKey, c.GetString(requestIDKey),
		)
	}
}

// noStore keeps clients and proxies from caching live standings.
func noStore() gin.HandlerFunc {
	return cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})
}
