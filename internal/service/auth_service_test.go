package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
)

type fakeUserRepo struct {
	byUsername map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.byUsername[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := f.byUsername[username]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var result []domain.User
	for _, user := range f.byUsername {
		result = append(result, *user)
	}
	return result, nil
}

func newTestAuthService(t *testing.T, users ...*domain.User) *AuthService {
	t.Helper()
	repo := &fakeUserRepo{byUsername: map[string]*domain.User{}}
	for _, user := range users {
		repo.byUsername[user.Username] = user
	}
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		SessionTTLMinutes:     300,
		BcryptCost:            4,
	}
	return NewAuthService(cfg, AuthDependencies{
		UserRepo: repo,
		Throttle: auth.NewLoginThrottle(nil, 0, 0),
		Logger:   zap.NewNop(),
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return hash
}

func TestLoginSuccessIssuesSessionToken(t *testing.T) {
	svc := newTestAuthService(t, &domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: mustHash(t, "correct-horse"),
		RoleID:       2,
	})

	token, expiresAt, err := svc.Login(context.Background(), "alice", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// login requests the long session TTL, not the 15 minute default
	require.WithinDuration(t, time.Now().Add(300*time.Minute), expiresAt, 5*time.Second)

	session, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", session.Username)
	require.EqualValues(t, 2, session.RoleID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, &domain.User{
		ID:           1,
		Username:     "bob",
		PasswordHash: mustHash(t, "right-password"),
		RoleID:       1,
	})

	token, _, err := svc.Login(context.Background(), "bob", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Empty(t, token)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := newTestAuthService(t)

	// same outcome as a wrong password, so usernames cannot be enumerated
	token, _, err := svc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Empty(t, token)
}

// stubThrottleStore holds one failure counter shared across keys.
type stubThrottleStore struct{ count int64 }

func (s *stubThrottleStore) Get(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult(strconv.FormatInt(s.count, 10), nil)
}

func (s *stubThrottleStore) Incr(_ context.Context, _ string) *redis.IntCmd {
	s.count++
	return redis.NewIntResult(s.count, nil)
}

func (s *stubThrottleStore) Expire(_ context.Context, _ string, _ time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (s *stubThrottleStore) Del(_ context.Context, _ ...string) *redis.IntCmd {
	s.count = 0
	return redis.NewIntResult(1, nil)
}

func TestLoginBlockedByThrottle(t *testing.T) {
	repo := &fakeUserRepo{byUsername: map[string]*domain.User{
		"alice": {ID: 1, Username: "alice", PasswordHash: mustHash(t, "correct-horse"), RoleID: 2},
	}}
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		SessionTTLMinutes:     300,
		BcryptCost:            4,
	}
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo: repo,
		Throttle: auth.NewLoginThrottle(&stubThrottleStore{count: 10}, 10, 15*time.Minute),
		Logger:   zap.NewNop(),
	})

	// correct credentials, but the account exhausted its attempts: the
	// caller sees the same generic failure as a wrong password
	token, _, err := svc.Login(context.Background(), "alice", "correct-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Empty(t, token)
}
