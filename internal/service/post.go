package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/metrics"
	"github.com/edupost/edupost-server/internal/model"
)

type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

// List returns every post with its author, newest first.
func (s *Post) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		s.logger.Error("Post service: failed to list posts",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Search matches term case-insensitively against title, content and tags.
func (s *Post) Search(ctx context.Context, term string) ([]model.PostWithAuthor, error) {
	if term == "" {
		return nil, apierrors.NewErrSearchTermMissing()
	}

	posts, err := s.postStore.Search(ctx, term)
	if err != nil {
		s.logger.Error("Post service: failed to search posts",
			"term", term,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return posts, nil
}

func (s *Post) Get(ctx context.Context, id uuid.UUID) (model.PostWithAuthor, error) {
	post, err := s.postStore.GetWithAuthor(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.PostWithAuthor{}, apierrors.NewErrPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to get post",
			"post_id", id,
			"error", err.Error())
		return model.PostWithAuthor{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Create stores a new post owned by authorID.
func (s *Post) Create(ctx context.Context, authorID uuid.UUID, params model.CreatePostParams) (model.Post, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Post{}, apierrors.NewErrValidation("title is required")
	}
	if params.Content == "" {
		return model.Post{}, apierrors.NewErrValidation("content is required")
	}

	now := time.Now()
	post, err := s.postStore.Create(ctx, model.Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   params.Content,
		AuthorID:  authorID,
		Tags:      normalizeTags(params.Tags),
		Likes:     0,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"author_id", authorID,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", post.ID,
		"author_id", authorID)

	return post, nil
}

// Update applies a partial update. Only the post's author may update it.
func (s *Post) Update(ctx context.Context, actorID, id uuid.UUID, params model.UpdatePostParams) (model.Post, error) {
	post, err := s.getOwned(ctx, id)
	if err != nil {
		return model.Post{}, err
	}

	if post.AuthorID != actorID {
		s.logger.Info("Post service: edit by non-owner refused",
			"post_id", id,
			"actor_id", actorID)
		apiErr := apierrors.NewErrNotPostOwnerEdit()
		metrics.RecordGuardDenial(metrics.GuardOwnership, apiErr.Status)
		return model.Post{}, apiErr
	}

	if params.Title != nil {
		if title := strings.TrimSpace(*params.Title); title != "" {
			post.Title = title
		}
	}
	if params.Content != nil && *params.Content != "" {
		post.Content = *params.Content
	}
	if params.Tags != nil {
		post.Tags = normalizeTags(*params.Tags)
	}
	post.UpdatedAt = time.Now()

	updated, err := s.postStore.Update(ctx, post)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apierrors.NewErrPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to update post",
			"post_id", id,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

// Delete removes a post. Only the post's author may delete it.
func (s *Post) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	post, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		s.logger.Info("Post service: delete by non-owner refused",
			"post_id", id,
			"actor_id", actorID)
		var requestAuthor string
		if actorID != uuid.Nil {
			requestAuthor = actorID.String()
		}
		apiErr := apierrors.NewErrNotPostOwnerDelete(requestAuthor, post.AuthorID.String())
		metrics.RecordGuardDenial(metrics.GuardOwnership, apiErr.Status)
		return apiErr
	}

	err = s.postStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to delete post",
			"post_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Post service: post deleted",
		"post_id", id,
		"actor_id", actorID)

	return nil
}

func (s *Post) getOwned(ctx context.Context, id uuid.UUID) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Post{}, apierrors.NewErrPostNotFound()
	}
	if err != nil {
		s.logger.Error("Post service: failed to get post",
			"post_id", id,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
