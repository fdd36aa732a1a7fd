package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByEmailOrUsername returns any user holding either identifier.
	GetByEmailOrUsername(ctx context.Context, email, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// Role enumerates user roles.
type Role string

const (
	// RoleTeacher may create, edit and delete posts.
	RoleTeacher Role = "teacher"
	// RoleStudent is a read-only account.
	RoleStudent Role = "student"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Name     string
	Role     Role
}
