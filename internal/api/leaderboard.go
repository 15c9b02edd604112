package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

const maxLeaderboardLimit = 100

type scoreSubmission struct {
	Score int        `json:"score" binding:"min=0"`
	Mode  snake.Mode `json:"mode" binding:"required"`
}

// leaderboardRow is the wire form of a leaderboard entry. The date is a
// calendar day (YYYY-MM-DD, UTC), as browser clients expect.
type leaderboardRow struct {
	ID       string     `json:"id"`
	Rank     int        `json:"rank"`
	UserID   string     `json:"userId"`
	Username string     `json:"username"`
	Score    int        `json:"score"`
	Mode     snake.Mode `json:"mode"`
	Date     string     `json:"date"`
}

func toLeaderboardRows(entries []storage.LeaderboardEntry) []leaderboardRow {
	rows := make([]leaderboardRow, len(entries))
	for i, e := range entries {
		rows[i] = leaderboardRow{
			ID:       e.ID,
			Rank:     e.Rank,
			UserID:   e.UserID,
			Username: e.Username,
			Score:    e.Score,
			Mode:     e.Mode,
			Date:     e.Date.UTC().Format(time.DateOnly),
		}
	}
	return rows
}

type scoreResponse struct {
	Rank        int  `json:"rank"`
	IsHighScore bool `json:"isHighScore"`
}

func (s *Server) leaderboard(c *gin.Context) {
	mode := snake.Mode(c.Query("mode"))
	if mode != "" && !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode " + strconv.Quote(string(mode))})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxLeaderboardLimit)
	}

	entries, err := s.store.Leaderboard(c.Request.Context(), mode, limit)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeaderboardRows(entries))
}

func (s *Server) submitScore(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	var req scoreSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mode " + strconv.Quote(string(req.Mode))})
		return
	}

	ctx := c.Request.Context()
	u, err := s.store.UserByEmail(ctx, email)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	case err != nil:
		s.internalError(c, err)
		return
	}

	rank, high, err := s.store.SubmitScore(ctx, u.ID, req.Score, req.Mode)
	if err != nil {
		s.internalError(c, err)
		return
	}

	s.logger.Info("score submitted", "user", u.Username, "score", req.Score, "mode", req.Mode, "rank", rank)
	c.JSON(http.StatusOK, scoreResponse{Rank: rank, IsHighScore: high})
}
