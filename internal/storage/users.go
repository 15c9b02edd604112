package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("storage: user not found")
	ErrEmailTaken      = errors.New("storage: email already registered")
	ErrUsernameTaken   = errors.New("storage: username already taken")
	ErrInvalidPassword = errors.New("storage: invalid password")
)

// User is a registered player. The password hash never leaves the package.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUser registers a new account. Emails are matched case-insensitively.
func (s *Store) CreateUser(ctx context.Context, username, email, password string) (User, error) {
	email = normalizeEmail(email)

	if _, err := s.UserByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("storage: cannot hash password: %w", err)
	}

	u := User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, string(hash), u.CreatedAt.Format(sqliteTime),
	)
	if err != nil {
		switch msg := err.Error(); {
		case strings.Contains(msg, "users.email"):
			return User{}, ErrEmailTaken
		case strings.Contains(msg, "users.username"):
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("storage: cannot create user: %w", err)
	}
	return u, nil
}

// Authenticate checks credentials and returns the matching user.
func (s *Store) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, hash, err := s.userWithHash(ctx, "email", normalizeEmail(email))
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, ErrInvalidPassword
	}
	return u, nil
}

// UserByEmail looks up an account by email.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	u, _, err := s.userWithHash(ctx, "email", normalizeEmail(email))
	return u, err
}

// UserByID looks up an account by its ID.
func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	u, _, err := s.userWithHash(ctx, "id", id)
	return u, err
}

// userWithHash loads a user by an indexed column. column is never user input.
func (s *Store) userWithHash(ctx context.Context, column, value string) (User, string, error) {
	var (
		u         User
		hash      string
		createdAt any
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE `+column+` = ?`,
		value,
	).Scan(&u.ID, &u.Username, &u.Email, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, "", ErrUserNotFound
	}
	if err != nil {
		return User{}, "", fmt.Errorf("storage: cannot query user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return u, hash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
