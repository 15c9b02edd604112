package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/snake-arena/internal/storage"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Success bool          `json:"success"`
	User    *storage.User `json:"user,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authResponse{Error: err.Error()})
		return
	}

	u, err := s.store.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, authResponse{Error: "Email already registered"})
		return
	case errors.Is(err, storage.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, authResponse{Error: "Username already taken"})
		return
	case err != nil:
		s.internalError(c, err)
		return
	}

	s.logger.Info("user registered", "id", u.ID, "username", u.Username)
	c.JSON(http.StatusCreated, authResponse{Success: true, User: &u})
}

// login reports failed credentials in the body with status 200, matching
// what the browser client expects.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, authResponse{Error: err.Error()})
		return
	}

	u, err := s.store.Authenticate(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		c.JSON(http.StatusOK, authResponse{Error: "User not found"})
		return
	case errors.Is(err, storage.ErrInvalidPassword):
		c.JSON(http.StatusOK, authResponse{Error: "Invalid password"})
		return
	case err != nil:
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Success: true, User: &u})
}

func (s *Server) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// me resolves the caller from the email query parameter. Unknown emails
// yield JSON null.
func (s *Server) me(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: email"})
		return
	}

	u, err := s.store.UserByEmail(c.Request.Context(), email)
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		c.JSON(http.StatusOK, nil)
		return
	case err != nil:
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
