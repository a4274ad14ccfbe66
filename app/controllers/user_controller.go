package controllers

import (
	"errors"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/services"
	"blogapi/app/validation"
)

// UserController handles the authentication flow for the single admin
// user.
type UserController struct {
	auth *services.AuthService
}

// NewUserController creates a new UserController.
func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// Login validates the credentials and issues a signed, time-limited
// token. All authentication failures share one 401 response.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := validation.Check(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	token, err := uc.auth.Login(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(w, http.StatusUnauthorized, "Authentication failed...")
			return
		}
		sendServerError(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}
