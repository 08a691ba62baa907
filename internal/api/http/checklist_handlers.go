package http

import (
	"net/http"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/views"
)

func (a *API) handleListChecklists(w http.ResponseWriter, r *http.Request) {
	rentalID := r.URL.Query().Get("rentalId")
	items := views.Filter(a.store.Checklists.Snapshot(),
		views.Exact(rentalID, func(c domain.Checklist) string { return c.RentalID }),
	)
	writeJSON(w, http.StatusOK, items)
}

// handleSaveChecklist normalizes the incoming checklist through the
// state machine defaults. A completed check-in with required items
// still unchecked is rejected with the missing list unless the caller
// explicitly forces the save.
func (a *API) handleSaveChecklist(w http.ResponseWriter, r *http.Request) {
	var c domain.Checklist
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	machine := screen.NewChecklistMachine(c)
	if r.URL.Query().Get("force") != "true" && c.CheckInStatus == domain.CheckInStatusCompleted {
		if missing := machine.MissingCheckInItems(); len(missing) > 0 {
			writeJSON(w, http.StatusConflict, map[string]any{"missing": missing})
			return
		}
	}
	if err := a.sync.Checklists.Save(r.Context(), machine.Checklist()); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
