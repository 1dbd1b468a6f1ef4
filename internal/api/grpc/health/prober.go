package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// ServiceName is the health service name reported for the employee directory.
const ServiceName = "employees.Directory"

// Prober periodically loads the directory document and publishes the result
// to a gRPC health server.
type Prober struct {
	store    model.DirectoryStore
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

func NewProber(store model.DirectoryStore, server *health.Server, interval time.Duration, logger *logger.Logger) *Prober {
	return &Prober{store: store, server: server, interval: interval, logger: logger}
}

// Check loads the directory once and updates both the overall and the
// directory service status.
func (p *Prober) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := p.store.Load(ctx); err != nil {
		p.logger.Warn("Health prober: directory unavailable",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	p.server.SetServingStatus("", status)
	p.server.SetServingStatus(ServiceName, status)

	return status
}

// Run checks immediately and then on every interval until ctx is done, when
// all services are marked NOT_SERVING.
func (p *Prober) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.server.Shutdown()
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
