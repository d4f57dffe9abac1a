package controllers

import (
	"net/http"
	"time"

	"papelaria/pkg/response"
)

// MetaController serves the service banner and the liveness endpoint.
type MetaController struct {
	startedAt time.Time
}

func NewMetaController() *MetaController {
	return &MetaController{startedAt: time.Now()}
}

// Home handles GET /. It lists the resource endpoints so a browser hit
// on the root is self-describing.
func (c *MetaController) Home(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"service": "papelaria-backend",
		"message": "API is running. Use /users, /items or /purchases.",
		"endpoints": map[string]string{
			"GET /health":     "liveness status",
			"GET /users":      "list users with their purchases",
			"POST /users":     "create a user",
			"GET /items":      "list items, sorted by name",
			"GET /purchases":  "list purchases, newest first",
			"POST /purchases": "create a purchase",
		},
	})
}

// Health handles GET /health. Always 200.
func (c *MetaController) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(c.startedAt).Round(time.Second).String(),
	})
}
