// Package http exposes the sync operations and derived views to the
// external presentation layer as a thin JSON API. Handlers only
// translate between HTTP and view models; every rule lives below.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/security"
	"jetfleet-backoffice/internal/service"
	"jetfleet-backoffice/internal/session"
	"jetfleet-backoffice/internal/store"
	syncops "jetfleet-backoffice/internal/sync"
)

type API struct {
	store    *store.Store
	sync     *syncops.Services
	auth     service.AuthService
	session  *session.Session
	notes    *notify.Center
	tokens   security.TokenManager
	pageSize int
}

func NewAPI(
	st *store.Store,
	sync *syncops.Services,
	auth service.AuthService,
	sess *session.Session,
	notes *notify.Center,
	tokens security.TokenManager,
	pageSize int,
) *API {
	return &API{
		store:    st,
		sync:     sync,
		auth:     auth,
		session:  sess,
		notes:    notes,
		tokens:   tokens,
		pageSize: pageSize,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
