package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_CreateAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("super-secret"), 7*24*time.Hour)

	token, err := svc.CreateToken("42")
	require.NoError(t, err)

	subject, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestJWTService_ClaimsWindow(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("super-secret"), 7*24*time.Hour)

	token, err := svc.CreateToken("7")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("super-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "7", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("secret"), -time.Minute)

	token, err := svc.CreateToken("1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()

	// A valid token signed with a different secret is indistinguishable
	// from a malformed one
	issuer := NewJWTService([]byte("right-secret"), time.Hour)
	verifier := NewJWTService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.CreateToken("1")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("secret"), time.Hour)

	for _, tokenStr := range []string{"", "garbage", "not.a.jwt"} {
		_, err := svc.VerifyToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}

func TestJWTService_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	tokenStr, err := token.SignedString(secret)
	require.NoError(t, err)

	svc := NewJWTService(secret, time.Hour)
	_, err = svc.VerifyToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := NewJWTService([]byte("secret"), time.Hour)
	_, err = svc.VerifyToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
