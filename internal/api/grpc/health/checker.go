package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

// ServiceName is the health service name reported alongside the overall status.
const ServiceName = "edupost.Posts"

const pingTimeout = 2 * time.Second

// Checker keeps a gRPC health server in sync with the store's liveness.
type Checker struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker that probes pinger every interval.
func NewChecker(pinger model.Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	return &Checker{
		pinger:   pinger,
		server:   health.NewServer(),
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health service to register on a gRPC server.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// Probe pings the store once and publishes the result.
func (c *Checker) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.Ping(ctx); err != nil {
		c.logger.Warn("Health checker: store ping failed", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	return status
}

// Run probes until ctx is done, then marks every service NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Probe(ctx)
		}
	}
}
