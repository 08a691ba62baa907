package http

import (
	"errors"
	"net/http"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	access, refresh, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInactiveUser) {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: access, RefreshToken: refresh})
}

type signupRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	form := domain.User{Name: req.Name, Email: req.Email}
	// Self-signup assigns the default role itself; roles are not part of
	// this form.
	if err := screen.ValidateUserForm(form, req.Password, req.Confirmation, false, true); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}

	user, err := a.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.auth.Logout()
	writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleSession(w http.ResponseWriter, r *http.Request) {
	user, ok := a.session.Current()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no active session"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"current": a.notes.Current()})
}

func (a *API) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	a.notes.Dismiss()
	writeJSON(w, http.StatusNoContent, nil)
}
