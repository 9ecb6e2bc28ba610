package auth

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("unit-test-secret")

	token, err := m.CreateToken("alice")
	assert.Equal(t, nil, err)

	username, err := m.ParseToken(token)
	assert.Equal(t, nil, err)
	assert.Equal(t, "alice", username)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-one").CreateToken("alice")
	assert.Equal(t, nil, err)

	_, err = NewManager("secret-two").ParseToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := NewManager("unit-test-secret").ParseToken("not.a.token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager("unit-test-secret")
	m.ttl = -time.Minute

	token, err := m.CreateToken("alice")
	assert.Equal(t, nil, err)

	_, err = m.ParseToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseToken_MissingSubject(t *testing.T) {
	m := NewManager("unit-test-secret")

	claims := jwt.MapClaims{"exp": jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	assert.Equal(t, nil, err)

	_, err = m.ParseToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestParseToken_UnsignedAlgRejected(t *testing.T) {
	m := NewManager("unit-test-secret")

	claims := jwt.MapClaims{"sub": "alice"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.Equal(t, nil, err)

	_, err = m.ParseToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.Equal(t, true, CheckPassword("s3cret-pass", hashed))
	assert.Equal(t, false, CheckPassword("wrong-pass", hashed))
}
