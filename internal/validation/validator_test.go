package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=teacher student"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		req       sampleRequest
		wantNil   bool
		wantFirst string
		wantCount int
	}{
		{
			name:    "valid",
			req:     sampleRequest{Username: "alice", Email: "alice@example.com"},
			wantNil: true,
		},
		{
			name:      "short username",
			req:       sampleRequest{Username: "al", Email: "alice@example.com"},
			wantFirst: "username must be at least 3 characters",
			wantCount: 1,
		},
		{
			name:      "bad email and role",
			req:       sampleRequest{Username: "alice", Email: "nope", Role: "admin"},
			wantFirst: "email must be a valid email address",
			wantCount: 2,
		},
		{
			name:      "missing everything",
			req:       sampleRequest{},
			wantFirst: "username is required",
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.req)
			if tt.wantNil {
				assert.Nil(t, verr)
				return
			}

			require.NotNil(t, verr)
			assert.Equal(t, tt.wantFirst, verr.First())
			assert.Len(t, verr.Fields, tt.wantCount)
		})
	}
}

func TestRequestValidationError_Error(t *testing.T) {
	verr := &RequestValidationError{Fields: []FieldError{
		{Message: "a is required"},
		{Message: "b is required"},
	}}

	assert.Equal(t, "a is required; b is required", verr.Error())
	assert.Equal(t, "validation failed", (&RequestValidationError{}).Error())
}
