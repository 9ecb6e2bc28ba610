package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies HS256 bearer tokens. The username travels in the
// sub claim; tokens expire after tokenTTL.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: tokenTTL}
}

func (m *Manager) CreateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": jwt.NewNumericDate(time.Now().UTC().Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken verifies a token and returns the username it was issued for.
func (m *Manager) ParseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	username, err := parsed.Claims.GetSubject()
	if err != nil || username == "" {
		return "", ErrInvalidToken
	}

	return username, nil
}
