package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/testutil"
)

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

func TestLogging_UnaryInterceptor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, status.Error(codes.Unavailable, "directory unavailable")
			},
			wantCode: codes.Unavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			interceptor := NewLogging(bufferLogger(&buf)).UnaryInterceptor()

			info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
			_, err := interceptor(context.Background(), struct{}{}, info, tt.handler)

			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Contains(t, buf.String(), "finished call")
			assert.Contains(t, buf.String(), tt.wantCode.String())
		})
	}
}

func TestRecovery_UnaryInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := NewRecovery(testutil.MakeNoopLogger()).UnaryInterceptor()

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	resp, err := interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}
