package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/snake-arena/internal/spectator"
)

const (
	minBoardSize = 32
	maxBoardSize = 1024
)

type joinResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) listGames(c *gin.Context) {
	c.JSON(http.StatusOK, s.hub.List())
}

// joinGame reports an unknown game in the body with status 200, matching
// what the browser client expects.
func (s *Server) joinGame(c *gin.Context) {
	if err := s.hub.Join(c.Param("id")); err != nil {
		c.JSON(http.StatusOK, joinResponse{Error: "Game not found"})
		return
	}
	c.JSON(http.StatusOK, joinResponse{Success: true})
}

func (s *Server) leaveGame(c *gin.Context) {
	s.hub.Leave(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Successfully left game"})
}

func (s *Server) gameState(c *gin.Context) {
	v, err := s.hub.View(c.Param("id"))
	if errors.Is(err, spectator.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"game":     v.Game,
		"gridSize": v.GridSize,
		"state":    v.State,
	})
}

// gameBoard renders the current board as a PNG. The optional size query
// parameter sets the square output size in pixels.
func (s *Server) gameBoard(c *gin.Context) {
	v, err := s.hub.View(c.Param("id"))
	if errors.Is(err, spectator.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < minBoardSize || n > maxBoardSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 32 and 1024"})
			return
		}
		size = n
	}

	img := RenderBoard(v.State, v.GridSize, s.cellSize)
	if size > 0 {
		img = imaging.Resize(img, size, size, imaging.NearestNeighbor)
	}

	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	c.Writer.Header().Set("Content-Type", "image/png")
	if err := imaging.Encode(c.Writer, img, imaging.PNG); err != nil {
		_ = c.Error(err)
	}
}
