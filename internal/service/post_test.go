package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/mocks"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestPost_List(t *testing.T) {
	store := mocks.NewPostStore(t)
	posts := []model.PostWithAuthor{{Post: model.Post{ID: uuid.New()}}}
	store.On("List", mock.Anything).Return(posts, nil)

	got, err := NewPost(store, testutil.MakeNoopLogger()).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPost_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty term", func(t *testing.T) {
		_, err := NewPost(mocks.NewPostStore(t), testutil.MakeNoopLogger()).Search(ctx, "")
		apiErr := requireAPIStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, "Search term not provided", apiErr.Message)
	})

	t.Run("delegates to store", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("Search", mock.Anything, "go").Return([]model.PostWithAuthor{}, nil)

		got, err := NewPost(store, testutil.MakeNoopLogger()).Search(ctx, "go")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("Search", mock.Anything, "go").Return(nil, errors.New("db down"))

		_, err := NewPost(store, testutil.MakeNoopLogger()).Search(ctx, "go")
		require.Error(t, err)
	})
}

func TestPost_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	store := mocks.NewPostStore(t)
	store.On("GetWithAuthor", mock.Anything, id).Return(model.PostWithAuthor{}, model.ErrNotFound)

	_, err := NewPost(store, testutil.MakeNoopLogger()).Get(ctx, id)
	apiErr := requireAPIStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Post not found", apiErr.Message)
}

func TestPost_Create(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("Create", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
			return p.Title == "Intro" &&
				p.Content == "Body" &&
				p.AuthorID == authorID &&
				p.Likes == 0 &&
				assert.ObjectsAreEqual([]string{"go", "web"}, p.Tags)
		})).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })

		got, err := NewPost(store, testutil.MakeNoopLogger()).Create(ctx, authorID, model.CreatePostParams{
			Title:   "  Intro ",
			Content: "Body",
			Tags:    []string{" go", "", "web ", "  "},
		})
		require.NoError(t, err)
		assert.Equal(t, authorID, got.AuthorID)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := NewPost(mocks.NewPostStore(t), testutil.MakeNoopLogger()).Create(ctx, authorID, model.CreatePostParams{Title: "  ", Content: "Body"})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := NewPost(mocks.NewPostStore(t), testutil.MakeNoopLogger()).Create(ctx, authorID, model.CreatePostParams{Title: "Intro"})
		requireAPIStatus(t, err, http.StatusBadRequest)
	})
}

func TestPost_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	id := uuid.New()
	created := time.Now().Add(-time.Hour)
	existing := model.Post{
		ID:        id,
		Title:     "Old",
		Content:   "Old body",
		AuthorID:  owner,
		Tags:      []string{"a"},
		CreatedAt: created,
		UpdatedAt: created,
	}

	tests := []struct {
		name       string
		actor      uuid.UUID
		params     model.UpdatePostParams
		setup      func(store *mocks.PostStore)
		wantStatus int
		check      func(t *testing.T, p model.Post)
	}{
		{
			name:   "partial title only",
			actor:  owner,
			params: model.UpdatePostParams{Title: strPtr("New")},
			setup: func(store *mocks.PostStore) {
				store.On("GetByID", mock.Anything, id).Return(existing, nil)
				store.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })
			},
			check: func(t *testing.T, p model.Post) {
				assert.Equal(t, "New", p.Title)
				assert.Equal(t, "Old body", p.Content)
				assert.Equal(t, []string{"a"}, p.Tags)
				assert.True(t, p.UpdatedAt.After(created))
				assert.Equal(t, created, p.CreatedAt)
			},
		},
		{
			name:   "empty strings leave fields",
			actor:  owner,
			params: model.UpdatePostParams{Title: strPtr(""), Content: strPtr(""), Tags: &[]string{}},
			setup: func(store *mocks.PostStore) {
				store.On("GetByID", mock.Anything, id).Return(existing, nil)
				store.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, p model.Post) (model.Post, error) { return p, nil })
			},
			check: func(t *testing.T, p model.Post) {
				assert.Equal(t, "Old", p.Title)
				assert.Equal(t, "Old body", p.Content)
				assert.Empty(t, p.Tags)
			},
		},
		{
			name:   "non-owner",
			actor:  other,
			params: model.UpdatePostParams{Title: strPtr("Hijack")},
			setup: func(store *mocks.PostStore) {
				store.On("GetByID", mock.Anything, id).Return(existing, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "missing post",
			actor:  owner,
			params: model.UpdatePostParams{Title: strPtr("New")},
			setup: func(store *mocks.PostStore) {
				store.On("GetByID", mock.Anything, id).Return(model.Post{}, model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "deleted concurrently",
			actor:  owner,
			params: model.UpdatePostParams{Title: strPtr("New")},
			setup: func(store *mocks.PostStore) {
				store.On("GetByID", mock.Anything, id).Return(existing, nil)
				store.On("Update", mock.Anything, mock.Anything).Return(model.Post{}, model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewPostStore(t)
			tt.setup(store)

			got, err := NewPost(store, testutil.MakeNoopLogger()).Update(ctx, tt.actor, id, tt.params)
			if tt.wantStatus != 0 {
				requireAPIStatus(t, err, tt.wantStatus)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestPost_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()
	id := uuid.New()
	existing := model.Post{ID: id, AuthorID: owner}

	t.Run("owner", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("GetByID", mock.Anything, id).Return(existing, nil)
		store.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, NewPost(store, testutil.MakeNoopLogger()).Delete(ctx, owner, id))
	})

	t.Run("non-owner", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("GetByID", mock.Anything, id).Return(existing, nil)

		err := NewPost(store, testutil.MakeNoopLogger()).Delete(ctx, other, id)
		apiErr := requireAPIStatus(t, err, http.StatusForbidden)
		assert.Equal(t, other.String(), apiErr.Details["requestAuthor"])
		assert.Equal(t, owner.String(), apiErr.Details["postAuthor"])
	})

	t.Run("no acting author", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("GetByID", mock.Anything, id).Return(existing, nil)

		err := NewPost(store, testutil.MakeNoopLogger()).Delete(ctx, uuid.Nil, id)
		apiErr := requireAPIStatus(t, err, http.StatusForbidden)
		assert.NotContains(t, apiErr.Details, "requestAuthor")
		assert.Equal(t, owner.String(), apiErr.Details["postAuthor"])
	})

	t.Run("missing", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("GetByID", mock.Anything, id).Return(model.Post{}, model.ErrNotFound)

		err := NewPost(store, testutil.MakeNoopLogger()).Delete(ctx, owner, id)
		requireAPIStatus(t, err, http.StatusNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewPostStore(t)
		store.On("GetByID", mock.Anything, id).Return(existing, nil)
		store.On("Delete", mock.Anything, id).Return(errors.New("db down"))

		err := NewPost(store, testutil.MakeNoopLogger()).Delete(ctx, owner, id)
		require.Error(t, err)
		_, isAPI := apierrors.As(err)
		assert.False(t, isAPI)
	})
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, normalizeTags(nil))
	assert.Equal(t, []string{"a", "b"}, normalizeTags([]string{" a ", "", "b"}))
}
