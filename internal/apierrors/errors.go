// Package apierrors holds the errors surfaced to HTTP clients.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edupost/edupost-server/internal/model"
)

// APIError is an error with an HTTP status and a client-facing message.
// Details are merged into the response body next to the message.
type APIError struct {
	Status  int
	Message string
	Details map[string]any
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewErrAuthenticationRequired() *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: "Authentication required"}
}

func NewErrRoleRequired(role model.Role) *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: fmt.Sprintf("Access denied: only %ss may perform this action", role),
	}
}

func NewErrAuthorNotProvided() *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: `Access denied: user id not provided. Add "author" to the request body.`,
	}
}

func NewErrPermissionCheck(err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "Error checking permissions",
		Details: map[string]any{"error": err.Error()},
		Err:     err,
	}
}

func NewErrUserNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "User not found"}
}

func NewErrUserAlreadyExists() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "User with this email or username already exists"}
}

func NewErrLogin() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid login credentials"}
}

func NewErrPostNotFound() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: "Post not found"}
}

func NewErrNotPostOwnerEdit() *APIError {
	return &APIError{Status: http.StatusForbidden, Message: "Access denied: you can only edit your own posts"}
}

// NewErrNotPostOwnerDelete echoes both authors; an empty requestAuthor is left out.
func NewErrNotPostOwnerDelete(requestAuthor, postAuthor string) *APIError {
	details := map[string]any{"postAuthor": postAuthor}
	if requestAuthor != "" {
		details["requestAuthor"] = requestAuthor
	}
	return &APIError{
		Status:  http.StatusForbidden,
		Message: "Access denied: you can only delete your own posts",
		Details: details,
	}
}

func NewErrSearchTermMissing() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Search term not provided"}
}

func NewErrInvalidRequestBody(err error) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: "Invalid request body", Err: err}
}

func NewErrValidation(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewErrServiceUnavailable(err error) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: "Service unavailable", Err: err}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}
