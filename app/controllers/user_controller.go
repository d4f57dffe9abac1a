package controllers

import (
	"net/http"

	"papelaria/app/repositories"
	"papelaria/pkg/apperr"
	"papelaria/pkg/bind"
	"papelaria/pkg/logger"
	"papelaria/pkg/response"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// Index handles GET /users.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, users)
}

// Store handles POST /users.
func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if _, err := bind.JSON(r, &body); err != nil {
		logger.WithCtx(r.Context()).Warn("bad request body", "error", err)
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// Presence is checked here so an absent field is reported as such,
	// before any constraint validation runs.
	if body.Name == "" {
		respondError(w, r, apperr.MissingField("name"))
		return
	}
	if body.Email == "" {
		respondError(w, r, apperr.MissingField("email"))
		return
	}

	user, err := c.users.Create(body.Name, body.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user created", "user_id", user.ID, "email", user.Email)
	response.Created(w, user)
}
