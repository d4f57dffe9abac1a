package routes

import (
	"fmt"
	"net/http"

	"papelaria/app/controllers"
	"papelaria/app/repositories"
	"papelaria/pkg/response"
	"papelaria/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI wires every endpoint onto r, backed by repositories over db.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	meta := controllers.NewMetaController()
	users := controllers.NewUserController(repositories.NewUserRepository(db))
	items := controllers.NewItemController(repositories.NewItemRepository(db))
	purchases := controllers.NewPurchaseController(repositories.NewPurchaseRepository(db))

	r.Get("/", "home", meta.Home)
	r.Get("/health", "health", meta.Health)

	r.Get("/users", "users.index", users.Index)
	r.Post("/users", "users.store", users.Store)

	r.Get("/items", "items.index", items.Index)

	r.Get("/purchases", "purchases.index", purchases.Index)
	r.Post("/purchases", "purchases.store", purchases.Store)

	// Unmatched routes echo method and path, Express-style.
	notFound := func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", req.Method, req.URL.Path))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)
}
