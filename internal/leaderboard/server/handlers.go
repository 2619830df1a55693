package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/apple-picking/internal/leaderboard"
)

// submitRequest is the POST /scores body.
type submitRequest struct {
	PlayerName string  `json:"playerName"`
	Score      int     `json:"score" binding:"required,gte=1"`
	Timestamp  float64 `json:"timestamp" binding:"gte=0"`
}

func (s *Server) submitScore(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid score: " + err.Error()})
		return
	}

	entry := leaderboard.Entry{
		PlayerName: leaderboard.NormalizeName(req.PlayerName),
		Score:      req.Score,
		Timestamp:  req.Timestamp,
	}
	// Clients without a clock get the server's; future stamps are clamped
	now := leaderboard.UnixSeconds(s.now())
	if entry.Timestamp == 0 || entry.Timestamp > now {
		entry.Timestamp = now
	}

	if err := s.store.SaveEntry(entry); err != nil {
		s.logger.Error("cannot save entry", "error", err, requestIDKey, c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot save score"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) listScores(c *gin.Context) {
	limit := s.cfg.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, s.cfg.MaxLimit)
	}

	entries, err := s.store.TopEntries(limit)
	if err != nil {
		s.logger.Error("cannot list entries", "error", err, requestIDKey, c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot load scores"})
		return
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}
