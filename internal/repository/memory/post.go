package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	s *Store
}

func NewPostRepository(s *Store) *PostRepository {
	return &PostRepository{s: s}
}

func (r *PostRepository) Create(_ context.Context, post model.Post) (model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[post.ID]; ok {
		return model.Post{}, model.ErrAlreadyExists
	}
	post = clonePost(post)
	r.s.posts[post.ID] = post
	return clonePost(post), nil
}

func (r *PostRepository) GetByID(_ context.Context, id uuid.UUID) (model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}
	return clonePost(post), nil
}

func (r *PostRepository) GetWithAuthor(_ context.Context, id uuid.UUID) (model.PostWithAuthor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return model.PostWithAuthor{}, model.ErrNotFound
	}
	return r.withAuthor(post), nil
}

func (r *PostRepository) List(_ context.Context) ([]model.PostWithAuthor, error) {
	return r.filter(func(model.Post) bool { return true }), nil
}

func (r *PostRepository) Search(_ context.Context, term string) ([]model.PostWithAuthor, error) {
	needle := strings.ToLower(term)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }

	return r.filter(func(p model.Post) bool {
		return contains(p.Title) || contains(p.Content) || slices.ContainsFunc(p.Tags, contains)
	}), nil
}

func (r *PostRepository) Update(_ context.Context, post model.Post) (model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[post.ID]
	if !ok {
		return model.Post{}, model.ErrNotFound
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.Tags = slices.Clone(post.Tags)
	existing.UpdatedAt = post.UpdatedAt
	r.s.posts[post.ID] = existing

	return clonePost(existing), nil
}

func (r *PostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (r *PostRepository) filter(keep func(model.Post) bool) []model.PostWithAuthor {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.PostWithAuthor, 0, len(r.s.posts))
	for _, post := range r.s.posts {
		if keep(post) {
			out = append(out, r.withAuthor(post))
		}
	}

	slices.SortFunc(out, func(a, b model.PostWithAuthor) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// withAuthor must be called with the store lock held.
func (r *PostRepository) withAuthor(post model.Post) model.PostWithAuthor {
	author := r.s.users[post.AuthorID]
	return model.PostWithAuthor{
		Post: clonePost(post),
		Author: model.AuthorSummary{
			ID:       post.AuthorID,
			Username: author.Username,
			Name:     author.Name,
			Role:     author.Role,
		},
	}
}

func clonePost(p model.Post) model.Post {
	p.Tags = slices.Clone(p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
