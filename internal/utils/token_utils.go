package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CreateJWT signs an HMAC access token for the given subject and returns
// the token along with its expiry time.
func CreateJWT(secret, issuer string, expiry time.Duration, subject string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(expiry)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
