package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/views"
)

// handleListLocations returns the full alphabetical snapshot. The
// location catalog is small enough that the screen paginates locally.
func (a *API) handleListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Locations.Snapshot())
}

func (a *API) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var loc domain.RentalLocation
	if err := decodeBody(r, &loc); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := screen.ValidateLocation(loc); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Locations.Create(r.Context(), loc); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (a *API) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var loc domain.RentalLocation
	if err := decodeBody(r, &loc); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	loc.ID = mux.Vars(r)["id"]
	if err := screen.ValidateLocation(loc); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Locations.Update(r.Context(), loc); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Locations.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// handleListFleet hides deactivated items unless includeInactive=true,
// then applies search, status and category filters.
func (a *API) handleListFleet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := views.Filter(a.store.Fleet.Snapshot(),
		func(f domain.FleetItem) bool {
			return f.Active || q.Get("includeInactive") == "true"
		},
		views.TextSearch(q.Get("search"), func(f domain.FleetItem) []string {
			return []string{f.Name, f.Plate, f.Color}
		}),
		views.Exact(q.Get("status"), func(f domain.FleetItem) string { return string(f.Status) }),
		views.Exact(q.Get("category"), func(f domain.FleetItem) string { return string(f.Category) }),
	)
	writeJSON(w, http.StatusOK, views.Paginate(items, queryInt(r, "page", 1), a.pageSize))
}

func (a *API) handleCreateFleetItem(w http.ResponseWriter, r *http.Request) {
	var item domain.FleetItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item.Active = true
	if err := screen.ValidateFleetItem(item); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Fleet.Create(r.Context(), item); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (a *API) handleUpdateFleetItem(w http.ResponseWriter, r *http.Request) {
	var item domain.FleetItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := screen.ValidateFleetItem(item); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Fleet.Update(r.Context(), item); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeactivateFleetItem(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Fleet.Deactivate(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeleteFleetItem(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Fleet.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
