package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ligaescolar/kings-api/internal/domain/user"
)

// CookieName carries the signed session token. The role travels inside the
// token, not in a separate cookie.
const CookieName = "session"

// Manager signs and verifies session tokens with an HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be > 0")
	}

	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(p user.Principal) (string, error) {
	now := m.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  p.UserID,
		"role": string(p.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

func (m *Manager) Verify(_ context.Context, tokenString string) (user.Principal, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !token.Valid {
		return user.Principal{}, fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return user.Principal{}, fmt.Errorf("invalid session claims")
	}

	userID, _ := claims["sub"].(string)
	rawRole, _ := claims["role"].(string)
	if strings.TrimSpace(userID) == "" {
		return user.Principal{}, fmt.Errorf("session token has no subject")
	}
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return user.Principal{}, fmt.Errorf("session token has invalid role")
	}

	return user.Principal{UserID: userID, Role: role}, nil
}

// TTL exposes the configured lifetime for cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
