package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"papelaria/config"
	"papelaria/pkg/logger"
	"papelaria/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and returns a 500 Internal Server Error to the client. Outside production
// the panic value is included in the response body.
//
// Add this before the request-scoped middleware so it wraps all handlers:
//
//	r.Use(metrics.Middleware())
//	r.Use(middleware.Recovery)   // ← catches panics from all below
//	r.Use(reqid.Middleware())
//	r.Use(middleware.Logger)
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)

				msg := "Internal Server Error"
				if !config.IsProduction() {
					msg = fmt.Sprintf("Internal Server Error: %v", err)
				}
				response.Error(w, http.StatusInternalServerError, msg)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
