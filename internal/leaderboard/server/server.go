// Package server implements the HTTP leaderboard service that
// leaderboard.Client talks to.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/apple-picking/internal/config"
	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// EntryStore persists leaderboard entries. storage.Store implements it.
type EntryStore interface {
	SaveEntry(e leaderboard.Entry) error
	TopEntries(limit int) ([]leaderboard.Entry, error)
}

// Server serves POST /scores, GET /scores and GET /healthz.
type Server struct {
	cfg     config.ServerConfig
	store   EntryStore
	logger  *log.Logger
	router  *gin.Engine
	now     func() time.Time
	started time.Time

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

// New creates a server backed by store.
func New(store EntryStore, cfg config.ServerConfig, logger *log.Logger) *Server {
	def := config.DefaultAppConfig().Server
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 1
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 1
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = def.ShutdownGrace
	}

	s := &Server{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		now:      time.Now,
		started:  time.Now(),
		limiters: make(map[string]*rate.Limiter),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		s.loggingMiddleware(),
		ginGzip.Gzip(ginGzip.DefaultCompression),
	)

	router.GET("/scores", noStore(), s.listScores)
	router.POST("/scores", s.rateLimitMiddleware(), s.submitScore)
	router.GET("/healthz", s.health)
	return router
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting leaderboard server", "address", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server shutdown complete")
	return nil
}
