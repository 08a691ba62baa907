package http

import (
	"net/http"
	"time"

	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/views"
)

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", time.Now().UTC().Year())
	stats := views.ComputeDashboard(a.store.Rentals.Snapshot(), a.store.Fleet.Snapshot(), year)
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, _ := a.store.Profile.Get()
	writeJSON(w, http.StatusOK, profile)
}

func (a *API) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.CompanyProfile
	if err := decodeBody(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.sync.Settings.SaveProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleGetPrices(w http.ResponseWriter, r *http.Request) {
	prices, _ := a.store.Prices.Get()
	writeJSON(w, http.StatusOK, prices)
}

func (a *API) handleSavePrices(w http.ResponseWriter, r *http.Request) {
	var prices domain.PriceTable
	if err := decodeBody(r, &prices); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.sync.Settings.SavePrices(r.Context(), prices); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
