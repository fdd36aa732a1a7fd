package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
)

// PostService defines post read and write operations.
type PostService interface {
	List(ctx context.Context) ([]model.PostWithAuthor, error)
	Search(ctx context.Context, term string) ([]model.PostWithAuthor, error)
	Get(ctx context.Context, id uuid.UUID) (model.PostWithAuthor, error)
	Create(ctx context.Context, authorID uuid.UUID, params model.CreatePostParams) (model.Post, error)
	Update(ctx context.Context, actorID, id uuid.UUID, params model.UpdatePostParams) (model.Post, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// Post handles HTTP endpoints for posts. Mutating endpoints act as the user
// placed on the context by the guard chain in front of them.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns every post, newest first.
// @Summary List posts
// @Tags Posts
// @Produce json
// @Success 200 {array} PostWithAuthorResponse
// @Failure 500 {object} response.Message
// @Router /api/posts [get]
func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostListResponse(posts))
}

// Search returns posts matching the q parameter.
// @Summary Search posts
// @Description Case-insensitive substring match over title, content and tags
// @Tags Posts
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} PostWithAuthorResponse
// @Failure 400 {object} response.Message
// @Router /api/posts/search [get]
func (h *Post) Search(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostListResponse(posts))
}

// Get returns a single post.
// @Summary Get post
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} PostWithAuthorResponse
// @Failure 404 {object} response.Message
// @Router /api/posts/{id} [get]
func (h *Post) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		handleError(w, h.logger, apierrors.NewErrPostNotFound())
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostWithAuthorResponse(post))
}

// Create publishes a post owned by the caller.
// @Summary Create post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post"
// @Success 201 {object} PostResponse
// @Failure 400 {object} response.Message
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /api/posts [post]
func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrAuthenticationRequired())
		return
	}

	var req CreatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, err := h.postService.Create(r.Context(), actor.ID, model.CreatePostParams{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Post handler: post created",
		"post_id", post.ID,
		"author_id", actor.ID)

	response.JSON(w, http.StatusCreated, newPostResponse(post))
}

// Update edits a post owned by the caller.
// @Summary Update post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body UpdatePostRequest true "Fields to change"
// @Success 200 {object} PostResponse
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/posts/{id} [put]
func (h *Post) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrAuthenticationRequired())
		return
	}

	id, ok := postID(r)
	if !ok {
		handleError(w, h.logger, apierrors.NewErrPostNotFound())
		return
	}

	var req UpdatePostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	post, err := h.postService.Update(r.Context(), h.actorID(r, actor), id, model.UpdatePostParams{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newPostResponse(post))
}

// Delete removes a post owned by the caller.
// @Summary Delete post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/posts/{id} [delete]
func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, apierrors.NewErrAuthenticationRequired())
		return
	}

	id, ok := postID(r)
	if !ok {
		handleError(w, h.logger, apierrors.NewErrPostNotFound())
		return
	}

	if err := h.postService.Delete(r.Context(), h.actorID(r, actor), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.logger.Info("Post handler: post deleted",
		"post_id", id,
		"author_id", actor.ID)

	response.JSON(w, http.StatusOK, response.Message{Message: "Post deleted successfully"})
}

// actorID is the identity ownership is checked against: the actor set by the
// identifying middleware, or the authenticated user.
func (h *Post) actorID(r *http.Request, user model.User) uuid.UUID {
	if id, ok := h.contextManager.GetActorFromContext(r.Context()); ok {
		return id
	}
	return user.ID
}

func postID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
