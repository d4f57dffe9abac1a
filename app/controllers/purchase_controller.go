package controllers

import (
	"net/http"

	"papelaria/app/repositories"
	"papelaria/pkg/bind"
	"papelaria/pkg/logger"
	"papelaria/pkg/response"
)

type PurchaseController struct {
	purchases *repositories.PurchaseRepository
}

func NewPurchaseController(purchases *repositories.PurchaseRepository) *PurchaseController {
	return &PurchaseController{purchases: purchases}
}

// Index handles GET /purchases. Newest purchase first.
func (c *PurchaseController) Index(w http.ResponseWriter, r *http.Request) {
	purchases, err := c.purchases.All()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, purchases)
}

// Store handles POST /purchases. The repository checks that both
// references exist and defaults an omitted quantity to 1.
func (c *PurchaseController) Store(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   uint `json:"userId"`
		ItemID   uint `json:"itemId"`
		Quantity int  `json:"quantity"`
	}

	if _, err := bind.JSON(r, &body); err != nil {
		logger.WithCtx(r.Context()).Warn("bad request body", "error", err)
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	purchase, err := c.purchases.Create(body.UserID, body.ItemID, body.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("purchase created",
		"purchase_id", purchase.ID,
		"user_id", purchase.UserID,
		"item_id", purchase.ItemID,
		"quantity", purchase.Quantity,
	)
	response.Created(w, purchase)
}
