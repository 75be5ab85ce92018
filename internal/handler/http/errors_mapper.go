package http

import (
	"errors"
	"net/http"

	"github.com/koji-m/Bluedog/internal/client"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/internal/utils"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{client.ErrUninitialized, http.StatusConflict},
	{service.ErrNotConfigured, http.StatusConflict},

	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrSessionExpired, http.StatusUnauthorized},

	{service.ErrInvalidRequest, http.StatusBadRequest},
	{service.ErrWrongCollection, http.StatusBadRequest},
	{errBadRequest, http.StatusBadRequest},

	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrNotFound, http.StatusNotFound},

	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrRateLimited, http.StatusTooManyRequests},
	{service.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
	{service.ErrServiceFailure, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeFailure logs err and answers with its mapped status.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("op", op).Int("status", status).Msg("backend call failed")

	utils.WriteError(w, err.Error(), status)
}
