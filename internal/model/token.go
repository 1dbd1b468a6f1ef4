package model

import "time"

// TokenManager issues and validates signed access tokens.
type TokenManager interface {
	GenerateAccessToken(credential Credential) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (username string, err error)
}

// LoginResponse is returned to a caller after successful authentication.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}
