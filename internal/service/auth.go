package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

type Auth struct {
	credentialStore model.CredentialStore
	tokenService    *TokenService
	logger          *logger.Logger
}

func NewAuth(
	credentialStore model.CredentialStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		credentialStore: credentialStore,
		tokenService:    NewTokenService(tokenManager, logger),
		logger:          logger,
	}
}

// Login validates the credential pair and issues an access token for it.
func (a *Auth) Login(ctx context.Context, username, password string) (model.LoginResponse, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	credential, err := a.credentialStore.Validate(ctx, username, password)
	if errors.Is(err, model.ErrAuthenticationFailed) {
		a.logger.Info("Auth service: invalid credentials",
			"username", username)
		return model.LoginResponse{}, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to validate credentials",
			"username", username,
			"error", err.Error())
		return model.LoginResponse{}, fmt.Errorf("failed to validate credentials: %w", err)
	}

	resp, err := a.tokenService.Issue(ctx, credential)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"username", username,
			"error", err.Error())
		return model.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"username", username)

	return resp, nil
}

// GetUsername resolves the caller behind a bearer token.
func (a *Auth) GetUsername(ctx context.Context, token string) (string, error) {
	return a.tokenService.GetUsername(ctx, token)
}
