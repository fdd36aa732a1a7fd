package model

import "context"

// Pinger reports backing store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Resetter wipes every stored entity. Used by the seeder.
type Resetter interface {
	Reset(ctx context.Context) error
}
