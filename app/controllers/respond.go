package controllers

import (
	"net/http"

	"papelaria/config"
	"papelaria/pkg/apperr"
	"papelaria/pkg/logger"
	"papelaria/pkg/response"
)

// respondError logs a repository failure with request context and writes
// the mapped status. Internal errors are masked in production.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	log := logger.WithCtx(r.Context())

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		log.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}

	msg := err.Error()
	if status >= http.StatusInternalServerError && config.IsProduction() {
		msg = "Internal Server Error"
	}
	response.Error(w, status, msg)
}
