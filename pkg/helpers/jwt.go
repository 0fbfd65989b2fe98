package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates the signed bearer tokens that bind a
// request to a user identity. Tokens carry the subject email and an absolute
// expiry; there is no refresh or revocation, expiry is the only exit.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:    []byte(secret),
		AccessTTL: accessTTL,
	}
}

type Claims struct {
	jwt.RegisteredClaims
}

// Generate signs a token for the given subject email, expiring at
// issue-time + AccessTTL.
func (m *JWTManager) Generate(subjectEmail string) (string, time.Time, error) {
	exp := time.Now().Add(m.AccessTTL)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectEmail,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates signature and expiry and returns the embedded claims.
// Malformed, expired, or foreign-algorithm tokens all fail.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
