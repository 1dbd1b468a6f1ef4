package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/nicodelloro-arg/Employees/internal/logger"
)

// Logging logs finished gRPC calls through the application logger.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Logger adapts the application logger to the interceptor logging interface.
func (l *Logging) Logger() logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.logger.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func (l *Logging) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(l.Logger(), logging.WithLogOnEvents(logging.FinishCall))
}

func (l *Logging) StreamInterceptor() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(l.Logger(), logging.WithLogOnEvents(logging.FinishCall))
}
