package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nicodelloro-arg/Employees/internal/api/http/response"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// TokenService resolves the username behind a bearer token.
type TokenService interface {
	GetUsername(ctx context.Context, token string) (string, error)
}

// Authenticate validates bearer tokens and injects the username into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w, "Missing authorization token")
			return
		}

		username, err := m.tokenService.GetUsername(r.Context(), tokenString)
		if err != nil || username == "" {
			m.logger.Debug("Authenticate middleware: rejected token",
				"path", r.URL.Path)
			unauthorized(w, "Invalid authorization token")
			return
		}

		ctx := m.contextManager.SetUsernameToContext(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer`)
	response.Error(w, http.StatusUnauthorized, message)
}
