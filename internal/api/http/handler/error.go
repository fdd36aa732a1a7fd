package handler

import (
	"net/http"

	"github.com/edupost/edupost-server/internal/api/http/response"
	"github.com/edupost/edupost-server/internal/logger"
)

func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	response.Error(w, log, err)
}
