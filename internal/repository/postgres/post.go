package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edupost/edupost-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

const (
	postColumns = `id, title, content, author_id, tags, likes, created_at, updated_at`

	postWithAuthorSelect = `
        SELECT p.id, p.title, p.content, p.author_id, p.tags, p.likes, p.created_at, p.updated_at,
               u.username, u.name, u.role
        FROM posts p
        JOIN users u ON u.id = p.author_id`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (id, title, content, author_id, tags, likes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Content, post.AuthorID, nonNilTags(post.Tags), post.Likes,
		post.CreatedAt, post.UpdatedAt,
	))
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) GetWithAuthor(ctx context.Context, id uuid.UUID) (model.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` WHERE p.id = $1`

	post, err := scanPostWithAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PostWithAuthor{}, model.ErrNotFound
		}
		return model.PostWithAuthor{}, fmt.Errorf("failed to get post with author: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	query := postWithAuthorSelect + ` ORDER BY p.created_at DESC, p.id`

	return r.queryPosts(ctx, query)
}

func (r *PostRepository) Search(ctx context.Context, term string) ([]model.PostWithAuthor, error) {
	query := postWithAuthorSelect + `
        WHERE p.title ILIKE $1
           OR p.content ILIKE $1
           OR EXISTS (SELECT 1 FROM unnest(p.tags) AS tag WHERE tag ILIKE $1)
        ORDER BY p.created_at DESC, p.id`

	return r.queryPosts(ctx, query, "%"+likeEscaper.Replace(term)+"%")
}

func (r *PostRepository) Update(ctx context.Context, post model.Post) (model.Post, error) {
	query := `UPDATE posts SET title = $2, content = $3, tags = $4, updated_at = $5
			  WHERE id = $1
			  RETURNING ` + postColumns

	saved, err := scanPost(r.db.QueryRow(ctx, query,
		post.ID, post.Title, post.Content, nonNilTags(post.Tags), post.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]model.PostWithAuthor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.PostWithAuthor, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.Tags, &post.Likes,
		&post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}

func scanPostWithAuthor(row pgx.Row) (model.PostWithAuthor, error) {
	var (
		post model.PostWithAuthor
		role string
	)
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.Tags, &post.Likes,
		&post.CreatedAt, &post.UpdatedAt,
		&post.Author.Username, &post.Author.Name, &role,
	)
	post.Author.ID = post.AuthorID
	post.Author.Role = model.Role(role)
	return post, err
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
