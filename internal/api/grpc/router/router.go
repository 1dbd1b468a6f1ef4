package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/nicodelloro-arg/Employees/internal/api/grpc/middleware"
	"github.com/nicodelloro-arg/Employees/internal/logger"
)

// Router builds the gRPC server exposing the health service.
type Router struct {
	healthServer *health.Server
	logger       *logger.Logger
}

// New creates new gRPC Router instance.
func New(healthServer *health.Server, logger *logger.Logger) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register returns a gRPC server with logging and recovery interceptors, the
// health service and reflection registered.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryInterceptor(),
			recovery.UnaryInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamInterceptor(),
			recovery.StreamInterceptor(),
		),
	)
	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}
