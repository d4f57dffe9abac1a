package controllers

import (
	"net/http"

	"papelaria/app/repositories"
	"papelaria/pkg/response"
)

type ItemController struct {
	items *repositories.ItemRepository
}

func NewItemController(items *repositories.ItemRepository) *ItemController {
	return &ItemController{items: items}
}

// Index handles GET /items. Items are sorted by name ascending.
func (c *ItemController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := c.items.All()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, items)
}
