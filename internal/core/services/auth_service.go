package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/wheatworks/millbook/internal/apperrors"
	portssvc "github.com/wheatworks/millbook/internal/core/ports/services"
	"github.com/wheatworks/millbook/internal/utils"
	"github.com/wheatworks/millbook/pkg/config"
)

// AuthService authenticates the single configured shop operator and issues
// access tokens. There is no user table; the shop runs on one credential
// pair held in configuration.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Ensure AuthService implements the service facade.
var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies the operator credentials and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.ShopUsername)) == 1
	if !usernameMatches || !utils.CheckPasswordHash(password, s.cfg.ShopPasswordHash) {
		return "", time.Time{}, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.CreateJWT(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration, username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}
