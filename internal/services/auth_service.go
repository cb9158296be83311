package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"itemstore-backend/internal/auth"
	"itemstore-backend/internal/dto"
	"itemstore-backend/internal/models"
)

var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
)

type AuthService struct {
	db     *sqlx.DB
	issuer *auth.Issuer
}

func NewAuthService(db *sqlx.DB, issuer *auth.Issuer) *AuthService {
	return &AuthService{db: db, issuer: issuer}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: auth.HashPassword(req.Password),
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		insert into users (username, email, password_hash, created_at)
		values (?, ?, ?, ?)
	`
	res, err := s.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}

	return user, nil
}

// Login verifies the password digest and issues a bearer token. The token
// is recorded in the sessions table so it can later be resolved back to
// the user it was issued for.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	var user models.User
	query := "select id, username, email, password_hash, created_at from users where username = ?"

	if err := s.db.GetContext(ctx, &user, query, req.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token := s.issuer.IssueToken(user.Username)

	// Deterministic tokens make a re-login hit the same row.
	query = `
		insert into sessions (token, user_id, created_at)
		values (?, ?, ?)
		on conflict(token) do update set user_id = excluded.user_id
	`
	if _, err := s.db.ExecContext(ctx, query, token, user.ID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to record session: %w", err)
	}

	return token, nil
}

// UserByToken resolves a bearer token to the user it was issued for.
func (s *AuthService) UserByToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	query := `
		select u.id, u.username, u.email, u.password_hash, u.created_at
		from sessions s
		join users u on u.id = s.user_id
		where s.token = ?
	`
	if err := s.db.GetContext(ctx, &user, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return &user, nil
}

type Stats struct {
	Users int64 `json:"users"`
	Items int64 `json:"items"`
}

func (s *AuthService) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := s.db.GetContext(ctx, &stats.Users, "select count(*) from users"); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.Items, "select count(*) from items"); err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	return &stats, nil
}
