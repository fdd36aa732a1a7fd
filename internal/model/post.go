package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	GetWithAuthor(ctx context.Context, id uuid.UUID) (PostWithAuthor, error)
	// List returns every post, newest first.
	List(ctx context.Context) ([]PostWithAuthor, error)
	// Search returns posts whose title, content or any tag contains term,
	// case-insensitively, newest first.
	Search(ctx context.Context, term string) ([]PostWithAuthor, error)
	Update(ctx context.Context, post Post) (Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a published article.
type Post struct {
	ID        uuid.UUID
	Title     string
	Content   string
	AuthorID  uuid.UUID
	Tags      []string
	Likes     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthorSummary is the public projection of a post author.
type AuthorSummary struct {
	ID       uuid.UUID
	Username string
	Name     string
	Role     Role
}

// PostWithAuthor is a post joined with its author summary.
type PostWithAuthor struct {
	Post
	Author AuthorSummary
}

// CreatePostParams contains parameters to create a post.
type CreatePostParams struct {
	Title   string
	Content string
	Tags    []string
}

// UpdatePostParams holds a partial update. Nil fields are left untouched,
// as are empty title and content.
type UpdatePostParams struct {
	Title   *string
	Content *string
	Tags    *[]string
}
