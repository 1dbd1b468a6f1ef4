package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/nicodelloro-arg/Employees/internal/api/http/handler"
	"github.com/nicodelloro-arg/Employees/internal/api/http/middleware"
	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// Options configures the cross-cutting middleware of the HTTP API.
type Options struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	LoginRateLimit     string
	SecureHeadersDev   bool
}

// Router wires the HTTP API handlers and middleware.
type Router struct {
	employeeService handler.EmployeeService
	authService     handler.AuthService
	tokenService    middleware.TokenService
	directoryStore  model.DirectoryStore
	contextManager  model.ContextManager
	options         Options
	logger          *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	employeeService handler.EmployeeService,
	authService handler.AuthService,
	tokenService middleware.TokenService,
	directoryStore model.DirectoryStore,
	contextManager model.ContextManager,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		employeeService: employeeService,
		authService:     authService,
		tokenService:    tokenService,
		directoryStore:  directoryStore,
		contextManager:  contextManager,
		options:         options,
		logger:          logger,
	}
}

// Register builds the root handler. Employee routes require a bearer token;
// login, health and metrics do not.
func (r *Router) Register() (http.Handler, error) {
	loginLimit, err := middleware.NewIPRateLimiter(r.options.LoginRateLimit)
	if err != nil {
		return nil, err
	}

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	timeout := middleware.NewTimeout(r.options.RequestTimeout)

	root := mux.NewRouter()
	root.NotFoundHandler = notFound()
	root.MethodNotAllowedHandler = methodNotAllowed()
	root.Use(middleware.Metrics)

	root.Handle("/health", handler.NewHealth(r.directoryStore, r.logger)).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	authHandler := handler.NewAuth(r.authService, r.logger)
	root.Handle("/auth/login", loginLimit(timeout(http.HandlerFunc(authHandler.Login)))).Methods(http.MethodPost)

	employeeHandler := handler.NewEmployee(r.employeeService, r.contextManager, r.logger)
	employees := root.PathPrefix("/employees").Subrouter()
	employees.Use(authenticate.Handle, timeout)
	employees.HandleFunc("", employeeHandler.List).Methods(http.MethodGet)
	employees.HandleFunc("", employeeHandler.Create).Methods(http.MethodPost)
	employees.HandleFunc("/{id:[0-9]+}", employeeHandler.Get).Methods(http.MethodGet)
	employees.HandleFunc("/{id:[0-9]+}", employeeHandler.Update).Methods(http.MethodPut)
	employees.HandleFunc("/{id:[0-9]+}/details", employeeHandler.GetDetails).Methods(http.MethodGet)

	var h http.Handler = root
	h = middleware.NewSecure(middleware.SecureOptions(r.options.SecureHeadersDev))(h)
	if len(r.options.CORSAllowedOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: r.options.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
			MaxAge:         86400,
		}).Handler(h)
	}
	h = logging.Handle(h)

	return h, nil
}
