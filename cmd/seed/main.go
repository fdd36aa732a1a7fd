// Command seed resets the configured store and loads demo data.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/edupost/edupost-server/internal/config"
	"github.com/edupost/edupost-server/internal/hasher"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/repository"
	"github.com/edupost/edupost-server/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
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

	seeder := seed.NewSeeder(stores.Reset, stores.Users, stores.Posts, hasher.NewBcrypt(cfg.Auth.BcryptCost), logger)
	summary, err := seeder.Run(ctx)
	if err != nil {
		_ = stores.Close()
		logger.Fatal("seeding failed", "error", err)
	}

	logger.Info("database seeded",
		"users", len(summary.Users),
		"posts", len(summary.Posts),
		"password", seed.DefaultPassword)
}
