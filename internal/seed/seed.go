// Package seed fills an empty store with demo accounts and posts.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

// DefaultPassword is shared by every seeded account.
const DefaultPassword = "password123"

type demoUser struct {
	username string
	name     string
	role     model.Role
}

var demoUsers = []demoUser{
	{username: "professor1", name: "Professor Silva", role: model.RoleTeacher},
	{username: "professor2", name: "Professor Oliveira", role: model.RoleTeacher},
	{username: "student1", name: "Joao Santos", role: model.RoleStudent},
	{username: "student2", name: "Maria Souza", role: model.RoleStudent},
}

type demoPost struct {
	title   string
	content string
	tags    []string
	// index into the seeded teachers
	teacher int
}

var demoPosts = []demoPost{
	{
		title:   "Getting started with Go",
		content: "Go is a compiled language built for simple, reliable services. This lesson covers modules, packages and a first HTTP handler.",
		tags:    []string{"go", "backend"},
		teacher: 0,
	},
	{
		title:   "Building REST APIs",
		content: "Routing, request decoding and consistent error bodies. We build a small JSON API step by step.",
		tags:    []string{"api", "rest", "go"},
		teacher: 0,
	},
	{
		title:   "Relational modelling with PostgreSQL",
		content: "Tables, keys and indexes. We model users and posts and run basic CRUD queries.",
		tags:    []string{"postgres", "sql", "database"},
		teacher: 1,
	},
	{
		title:   "Token authentication with JWT",
		content: "JSON Web Tokens carry signed claims between client and server. We add bearer authentication to our API.",
		tags:    []string{"jwt", "authentication", "security"},
		teacher: 1,
	},
	{
		title:   "Docker for development",
		content: "Containers give every developer the same environment. We package the API and its database with Docker.",
		tags:    []string{"docker", "containers", "devops"},
		teacher: 0,
	},
}

// Summary reports what Run inserted.
type Summary struct {
	Users []model.User
	Posts []model.Post
}

// Seeder wipes a store and inserts the demo data set.
type Seeder struct {
	resetter  model.Resetter
	userStore model.UserStore
	postStore model.PostStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewSeeder(
	resetter model.Resetter,
	userStore model.UserStore,
	postStore model.PostStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Seeder {
	return &Seeder{
		resetter:  resetter,
		userStore: userStore,
		postStore: postStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Run deletes every user, token and post, then inserts two teachers, two
// students and five posts owned by the teachers.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	if err := s.resetter.Reset(ctx); err != nil {
		return Summary{}, fmt.Errorf("failed to reset store: %w", err)
	}
	s.logger.Info("Seeder: store cleared")

	hash, err := s.hasher.Hash(DefaultPassword)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to hash password: %w", err)
	}

	base := time.Now().Add(-time.Duration(len(demoPosts)) * time.Minute)

	var summary Summary
	var teachers []model.User
	for _, u := range demoUsers {
		user, err := s.userStore.Create(ctx, model.User{
			ID:           uuid.New(),
			Username:     u.username,
			Email:        u.username + "@example.com",
			PasswordHash: hash,
			Name:         u.name,
			Role:         u.role,
			CreatedAt:    base,
			UpdatedAt:    base,
		})
		if err != nil {
			return Summary{}, fmt.Errorf("failed to create user %s: %w", u.username, err)
		}
		summary.Users = append(summary.Users, user)
		if user.Role == model.RoleTeacher {
			teachers = append(teachers, user)
		}
	}
	s.logger.Info("Seeder: users created", "count", len(summary.Users))

	for i, p := range demoPosts {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		post, err := s.postStore.Create(ctx, model.Post{
			ID:        uuid.New(),
			Title:     p.title,
			Content:   p.content,
			AuthorID:  teachers[p.teacher].ID,
			Tags:      p.tags,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		})
		if err != nil {
			return Summary{}, fmt.Errorf("failed to create post %q: %w", p.title, err)
		}
		summary.Posts = append(summary.Posts, post)
	}
	s.logger.Info("Seeder: posts created", "count", len(summary.Posts))

	return summary, nil
}
