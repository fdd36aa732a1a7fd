// Package repository selects the storage backend configured for the process.
package repository

import (
	"context"
	"fmt"

	"github.com/edupost/edupost-server/internal/config"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/repository/memory"
	"github.com/edupost/edupost-server/internal/repository/postgres"
)

// Stores bundles every store backed by one storage engine.
type Stores struct {
	Users  model.UserStore
	Posts  model.PostStore
	Tokens model.IssuedTokenStore
	Health model.Pinger
	Reset  model.Resetter

	close func() error
}

// Close releases the underlying connection, if any.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured driver. Postgres schemas are migrated on open.
func Open(ctx context.Context, cfg config.Database) (*Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return &Stores{
			Users:  postgres.NewUserRepository(db),
			Posts:  postgres.NewPostRepository(db),
			Tokens: postgres.NewTokenRepository(db),
			Health: db,
			Reset:  db,
			close:  db.Close,
		}, nil
	case config.DriverMemory:
		store := memory.NewStore()
		return &Stores{
			Users:  memory.NewUserRepository(store),
			Posts:  memory.NewPostRepository(store),
			Tokens: memory.NewTokenRepository(store),
			Health: store,
			Reset:  store,
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
