package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/service"
	"jetfleet-backoffice/internal/views"
)

type userForm struct {
	domain.User
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users := views.Filter(a.store.Users.Snapshot(),
		views.TextSearch(q.Get("search"), func(u domain.User) []string {
			return []string{u.Name, u.Email}
		}),
		func(u domain.User) bool {
			role := q.Get("role")
			if views.IsSentinel(role) {
				return true
			}
			return u.Roles.Has(domain.Role(role))
		},
	)
	writeJSON(w, http.StatusOK, views.Paginate(users, queryInt(r, "page", 1), a.pageSize))
}

// handleCreateUser is the administrative path: unlike self-signup, roles
// are mandatory here.
func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var form userForm
	if err := decodeBody(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := screen.ValidateUserForm(form.User, form.Password, form.Confirmation, true, true); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	err := a.auth.AddUser(r.Context(), form.User, form.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, service.ErrNoRoles):
		writeError(w, http.StatusUnprocessableEntity, err)
	case err != nil:
		writeError(w, http.StatusBadGateway, err)
	default:
		writeJSON(w, http.StatusCreated, nil)
	}
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	user.ID = mux.Vars(r)["id"]
	// Same local validation as create, minus the password: an edit with an
	// empty password keeps the current credential.
	if err := screen.ValidateUserForm(user, "", "", true, false); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Users.Update(r.Context(), user); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
