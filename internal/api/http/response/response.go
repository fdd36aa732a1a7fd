// Package response writes JSON bodies and maps errors to HTTP statuses.
package response

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/edupost/edupost-server/internal/apierrors"
	"github.com/edupost/edupost-server/internal/logger"
)

// Message is the body of plain acknowledgements and errors.
type Message struct {
	Message string `json:"message"`
}

// JSON writes body encoded as JSON with the given status.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Error writes err as {message, ...details}. Errors that are not APIErrors
// are logged and reported as a generic 500.
func Error(w http.ResponseWriter, log *logger.Logger, err error) {
	apiErr, ok := apierrors.As(err)
	if !ok {
		log.Error("HTTP: unhandled error",
			"error", err.Error())
		apiErr = apierrors.NewErrInternalServerError(err)
	} else if apiErr.Status >= http.StatusInternalServerError {
		log.Error("HTTP: request failed",
			"status", apiErr.Status,
			"error", apiErr.Error())
	}

	body := make(map[string]any, len(apiErr.Details)+1)
	for k, v := range apiErr.Details {
		body[k] = v
	}
	body["message"] = apiErr.Message

	JSON(w, apiErr.Status, body)
}
