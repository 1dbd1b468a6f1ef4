package service

import (
	"context"
	"fmt"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// TokenService issues access tokens for validated credentials and resolves
// the caller behind a presented bearer token.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

func (s *TokenService) Issue(_ context.Context, credential model.Credential) (model.LoginResponse, error) {
	token, expiresAt, err := s.manager.GenerateAccessToken(credential)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("issue access: %w", err)
	}

	return model.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  credential.Username,
	}, nil
}

// GetUsername returns the subject of a valid access token.
func (s *TokenService) GetUsername(_ context.Context, token string) (string, error) {
	username, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected access token", "error", err.Error())
		return "", err
	}

	return username, nil
}
