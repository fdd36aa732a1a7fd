// Package main starts the edupost API server.
//
// @title edupost API
// @version 1.0
// @description Teachers publish posts; students and visitors read and search them.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by register or login.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpchealth "github.com/edupost/edupost-server/internal/api/grpc/health"
	grpcrouter "github.com/edupost/edupost-server/internal/api/grpc/router"
	grpcserver "github.com/edupost/edupost-server/internal/api/grpc/server"
	httpcontext "github.com/edupost/edupost-server/internal/api/http/context"
	httprouter "github.com/edupost/edupost-server/internal/api/http/router"
	httpserver "github.com/edupost/edupost-server/internal/api/http/server"
	"github.com/edupost/edupost-server/internal/config"
	"github.com/edupost/edupost-server/internal/hasher"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/repository"
	"github.com/edupost/edupost-server/internal/server"
	"github.com/edupost/edupost-server/internal/service"
	"github.com/edupost/edupost-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	shutdownTimeout     = 10 * time.Second
	healthProbeInterval = 15 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	stores, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer stores.Close()

	authService := service.NewAuth(
		stores.Users,
		stores.Tokens,
		token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL),
		hasher.NewBcrypt(cfg.Auth.BcryptCost),
		cfg.Auth.EnforceRevocation,
		logger,
	)
	postService := service.NewPost(stores.Posts, logger)

	if !cfg.Auth.EnforceRevocation {
		logger.Warn("token revocation is disabled, logged out tokens stay valid")
	}

	r := httprouter.New(authService, postService, stores.Health, httpcontext.NewManager(), httprouter.Options{
		AuthMode:        cfg.Auth.Mode,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitCount:  cfg.RateLimit.Requests,
		RateLimitWindow: cfg.RateLimit.Window,
	}, logger.With("transport", "http"))
	servers := []model.Server{
		httpserver.NewHTTPServer(r.Register(), cfg.HTTP.Address, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
	}

	var wg sync.WaitGroup

	if cfg.GRPC.Enabled {
		grpcLogger := logger.With("transport", "grpc")
		checker := grpchealth.NewChecker(stores.Health, healthProbeInterval, grpcLogger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			checker.Run(ctx)
		}()

		s := grpcrouter.New(checker.Server(), grpcLogger).Register()
		servers = append(servers, grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()
	logger.Info("authorization mode", "mode", cfg.Auth.Mode)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
