package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/admin-console/internal/domain"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed or missing claims, and expiry all collapse into this one value
// so callers cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies HMAC-signed access tokens. The secret is
// injected at construction; there is no process-wide default.
type TokenManager struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenManager builds a manager with the given shared secret and default
// token lifetime.
func NewTokenManager(secret string, defaultTTL time.Duration) *TokenManager {
	if defaultTTL <= 0 {
		defaultTTL = 15 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), defaultTTL: defaultTTL}
}

// sessionClaims is the signed claim set. RoleID is a pointer so a token
// missing the claim entirely is distinguishable from role id zero.
type sessionClaims struct {
	RoleID *int64 `json:"role_id"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user and role. The embedded role id is
// fixed at issuance; later role changes only show up after a re-login.
// A non-positive ttl falls back to the manager default.
func (tm *TokenManager) Issue(username string, roleID int64, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = tm.defaultTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &sessionClaims{
		RoleID: &roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks the signature and expiry and extracts the identity. Any
// failure returns ErrInvalidToken; verification never redirects or mutates
// anything, the caller decides what an absent identity means.
func (tm *TokenManager) Verify(tokenStr string) (*domain.Session, error) {
	// Strict decoding rejects base64url segments with non-zero trailing
	// bits; without it a signature whose last character was altered inside
	// the padding bits would still verify.
	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithStrictDecoding())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.RoleID == nil || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	session := &domain.Session{
		Username:  claims.Subject,
		RoleID:    *claims.RoleID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}
