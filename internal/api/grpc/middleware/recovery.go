package middleware

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/edupost/edupost-server/internal/logger"
)

// Recovery converts handler panics into Internal errors.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Option returns the recovery option for the go-grpc-middleware interceptors.
func (r *Recovery) Option() recovery.Option {
	return recovery.WithRecoveryHandlerContext(r.handle)
}

func (r *Recovery) handle(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}
