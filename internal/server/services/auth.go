// Package services contains server-side business logic. This file implements
// AuthService, which handles sign-up and sign-in and mints session JWTs.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/cryptox"
	"github.com/dmitrijs2005/taskvault/internal/server/auth"
	"github.com/dmitrijs2005/taskvault/internal/server/config"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
	"github.com/dmitrijs2005/taskvault/internal/server/repositories/users"
)

// AuthService provides authentication-related operations:
// - SignUp: create a credential and mint a token
// - SignIn: verify a credential and mint a token
type AuthService struct {
	users                       users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	decoyDigest                 string
}

// NewAuthService constructs an AuthService using the credential repository
// and server config.
func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:                       repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		// Verified against when the username does not exist, so both
		// sign-in failure paths pay for one hash evaluation.
		decoyDigest: cryptox.HashPassword("decoy"),
	}
}

// SignUp hashes the password, stores the new credential and returns a session
// token for the created user. A duplicate username surfaces as
// common.ErrorUsernameTaken; no token is ever issued for a failed create.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (string, error) {
	digest := cryptox.HashPassword(password)

	user, err := s.users.Create(ctx, &models.User{Username: username, PasswordDigest: digest})
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return "", common.ErrorUsernameTaken
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// SignIn verifies the credential and returns a fresh session token. An
// unknown username and a wrong password are indistinguishable to the caller:
// both collapse to common.ErrorInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyPassword(password, s.decoyDigest)
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordDigest) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
