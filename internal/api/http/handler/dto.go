package handler

import (
	"time"

	"github.com/edupost/edupost-server/internal/model"
)

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AuthorResponse is the author summary embedded in read responses.
type AuthorResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

// PostResponse is returned by create and update; author is the owner id.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostWithAuthorResponse is returned by list, search and get.
type PostWithAuthorResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	Tags      []string       `json:"tags"`
	Likes     int            `json:"likes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type RegisterRequest struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest carries author only in legacy payload mode, where it is
// consumed by the author middleware.
type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Author  string   `json:"author,omitempty"`
}

// UpdatePostRequest is a partial update; absent fields are left untouched.
type UpdatePostRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
	Author  string    `json:"author,omitempty"`
}

func newUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newPostResponse(p model.Post) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.AuthorID.String(),
		Tags:      tagsOrEmpty(p.Tags),
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostWithAuthorResponse(p model.PostWithAuthor) PostWithAuthorResponse {
	return PostWithAuthorResponse{
		ID:      p.ID.String(),
		Title:   p.Title,
		Content: p.Content,
		Author: AuthorResponse{
			ID:       p.Author.ID.String(),
			Username: p.Author.Username,
			Name:     p.Author.Name,
			Role:     p.Author.Role,
		},
		Tags:      tagsOrEmpty(p.Tags),
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newPostListResponse(posts []model.PostWithAuthor) []PostWithAuthorResponse {
	resp := make([]PostWithAuthorResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, newPostWithAuthorResponse(p))
	}
	return resp
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
