package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/screen"
	"jetfleet-backoffice/internal/views"
)

type costListResponse struct {
	Page    views.Page[domain.Cost] `json:"page"`
	Summary views.CostSummary       `json:"summary"`
}

// handleListCosts computes the summary cards over the period/search
// filtered base set, before the paid/pending status filter narrows the
// table, so the cards keep the broader context.
func (a *API) handleListCosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := queryInt(r, "month", 0)
	year := queryInt(r, "year", 0)

	base := views.Filter(a.store.Costs.Snapshot(),
		views.TextSearch(q.Get("search"), func(c domain.Cost) []string {
			return []string{c.Category, c.Responsible, c.Observations}
		}),
		views.Exact(q.Get("investor"), func(c domain.Cost) string { return c.Responsible }),
		views.InMonth(month, year, func(c domain.Cost) string { return c.PurchaseDate }),
	)
	summary := views.SummarizeCosts(base)

	filtered := views.Filter(base, costStatusPredicate(q.Get("status")))

	dir := views.Descending
	if q.Get("dir") == "asc" {
		dir = views.Ascending
	}
	sorted := views.SortBy(filtered, dir, costSortKey(q.Get("sort")))

	writeJSON(w, http.StatusOK, costListResponse{
		Page:    views.Paginate(sorted, queryInt(r, "page", 1), a.pageSize),
		Summary: summary,
	})
}

func costStatusPredicate(status string) views.Predicate[domain.Cost] {
	return func(c domain.Cost) bool {
		if views.IsSentinel(status) {
			return true
		}
		if status == "Pago" {
			return c.IsPaid
		}
		return !c.IsPaid
	}
}

func costSortKey(key string) func(domain.Cost) views.Key {
	switch key {
	case "category":
		return func(c domain.Cost) views.Key { return views.StringKey(c.Category) }
	case "value":
		return func(c domain.Cost) views.Key { return views.NumberKey(c.Value) }
	case "paidValue":
		return func(c domain.Cost) views.Key { return views.NumberKey(c.PaidValue) }
	default:
		return func(c domain.Cost) views.Key { return views.DateKey(c.PurchaseDate) }
	}
}

func (a *API) handleCreateCost(w http.ResponseWriter, r *http.Request) {
	var cost domain.Cost
	if err := decodeBody(r, &cost); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := screen.ValidateCost(cost); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Costs.Create(r.Context(), cost); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

func (a *API) handleUpdateCost(w http.ResponseWriter, r *http.Request) {
	var cost domain.Cost
	if err := decodeBody(r, &cost); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cost.ID = mux.Vars(r)["id"]
	if err := screen.ValidateCost(cost); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": err})
		return
	}
	if err := a.sync.Costs.Update(r.Context(), cost); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleDeleteCost(w http.ResponseWriter, r *http.Request) {
	if err := a.sync.Costs.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
