package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/edupost/edupost-server/internal/api/grpc/middleware"
	"github.com/edupost/edupost-server/internal/logger"
)

// Router assembles the gRPC server that exposes the health service.
type Router struct {
	healthServer healthpb.HealthServer
	logger       *logger.Logger
}

// New creates new gRPC Router instance.
func New(healthServer healthpb.HealthServer, logger *logger.Logger) *Router {
	return &Router{
		healthServer: healthServer,
		logger:       logger,
	}
}

// Register builds the gRPC server with logging and panic recovery
// interceptors and registers the health and reflection services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := middleware.NewRecovery(r.logger).Option()

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.healthServer)
	reflection.Register(s)

	return s
}
