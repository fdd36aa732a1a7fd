package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/validation"
)

const maxRequestBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apierrors.NewErrInvalidRequestBody(err)
	}
	return nil
}

// validate runs struct tag validation and reports the first failing field.
func validate(s any) error {
	if verr := validation.ValidateStruct(s); verr != nil {
		return apierrors.NewErrValidation(verr.First())
	}
	return nil
}
