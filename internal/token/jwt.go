package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nicodelloro-arg/Employees/internal/model"
)

// Claims represents access token claims.
type Claims struct {
	jwt.RegisteredClaims
	NameID string `json:"nameid"`
	Name   string `json:"name"`
}

// JWT implements TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey []byte
	issuer    string
	audience  string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a token manager signing with secretKey for the given issuer and audience.
func NewJWT(secretKey, issuer, audience string, ttl time.Duration) *JWT {
	return &JWT{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		ttl:       ttl,
		now:       time.Now,
	}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken signs a token for credential with a fresh jti.
func (j *JWT) GenerateAccessToken(credential model.Credential) (string, time.Time, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   credential.Username,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		NameID: strconv.Itoa(credential.ID),
		Name:   credential.Username,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ParseAccessToken validates signature, issuer, audience and expiry and returns the subject.
func (j *JWT) ParseAccessToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", model.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidToken, errors.New("missing subject"))
	}

	return claims.Subject, nil
}
