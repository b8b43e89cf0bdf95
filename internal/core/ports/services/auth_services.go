package services

import (
	"context"
	"time"
)

// AuthSvcFacade authenticates the shop operator and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT with its expiry.
	// Bad credentials surface apperrors.ErrUnauthorized.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
