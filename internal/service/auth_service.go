package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/repository"
)

// ErrInvalidCredentials covers unknown username, wrong password, and a
// throttled account. Callers surface one generic message for all three.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService runs the login flow: credential check, throttling, and
// session token issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	throttle   *auth.LoginThrottle
	logger     *zap.Logger
	sessionTTL time.Duration
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Throttle *auth.LoginThrottle
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		throttle:   deps.Throttle,
		logger:     deps.Logger,
		sessionTTL: cfg.SessionTTL(),
	}
}

// Login authenticates credentials and mints a session token. Sessions use
// the longer configured TTL; the embedded role id is the user's role right
// now and stays fixed until re-login. No cookie is touched here.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	blocked, err := s.throttle.Blocked(ctx, username)
	if err != nil {
		s.logger.Warn("login throttle unavailable", zap.Error(err))
	}
	if blocked {
		return "", time.Time{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if recErr := s.throttle.RecordFailure(ctx, username); recErr != nil {
			s.logger.Warn("login throttle unavailable", zap.Error(recErr))
		}
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.logger.Warn("login throttle unavailable", zap.Error(err))
	}

	return s.tokenMgr.Issue(user.Username, user.RoleID, s.sessionTTL)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
