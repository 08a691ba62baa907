package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/views"
)

// handleListRentals applies the screen's filter conjunction, active sort
// and pagination over a store snapshot.
func (a *API) handleListRentals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("search")
	status := q.Get("status")
	location := q.Get("location")
	month := queryInt(r, "month", 0)
	year := queryInt(r, "year", 0)

	filtered := views.Filter(a.store.Rentals.Snapshot(),
		views.TextSearch(search, func(rt domain.Rental) []string {
			return []string{rt.ClientName, rt.ClientDocument, rt.ClientPhone}
		}),
		views.Exact(status, func(rt domain.Rental) string { return string(rt.Status) }),
		views.Exact(location, func(rt domain.Rental) string { return rt.LocationName }),
		views.InMonth(month, year, func(rt domain.Rental) string { return rt.Date }),
	)

	dir := views.Ascending
	if q.Get("dir") == "desc" {
		dir = views.Descending
	}
	sorted := views.SortBy(filtered, dir, rentalSortKey(q.Get("sort")))

	page := views.Paginate(sorted, queryInt(r, "page", 1), a.pageSize)
	writeJSON(w, http.StatusOK, page)
}

func rentalSortKey(key string) func(domain.Rental) views.Key {
	switch key {
	case "client":
		return func(r domain.Rental) views.Key { return views.StringKey(r.ClientName) }
	case "value":
		return func(r domain.Rental) views.Key { return views.NumberKey(r.Value) }
	case "status":
		return func(r domain.Rental) views.Key { return views.StringKey(string(r.Status)) }
	default:
		return func(r domain.Rental) views.Key { return views.DateKey(r.Date) }
	}
}

func (a *API) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var rental domain.Rental
	if err := decodeBody(r, &rental); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := screen.ValidateRental(rental); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Rentals.Create(r.Context(), rental); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (a *API) handleUpdateRental(w http.ResponseWriter, r *http.Request) {
	var rental domain.Rental
	if err := decodeBody(r, &rental); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rental.ID = mux.Vars(r)["id"]
	if err := screen.ValidateRental(rental); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Rentals.Update(r.Context(), rental); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeleteRental(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Rentals.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
