package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the full route table. Auth endpoints are public;
// everything else sits behind the token middleware.
func NewRouter(a *API) *mux.Router {
	root := mux.NewRouter()

	public := root.PathPrefix("/api/auth").Subrouter()
	public.HandleFunc("/login", a.handleLogin).Methods(http.MethodPost)
	public.HandleFunc("/signup", a.handleSignup).Methods(http.MethodPost)

	api := root.PathPrefix("/api").Subrouter()
	api.Use(a.authMiddleware)

	api.HandleFunc("/auth/logout", a.handleLogout).Methods(http.MethodPost)
	api.HandleFunc("/session", a.handleSession).Methods(http.MethodGet)

	api.HandleFunc("/notifications", a.handleNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications", a.handleDismissNotification).Methods(http.MethodDelete)

	api.HandleFunc("/rentals", a.handleListRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals", a.handleCreateRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", a.handleUpdateRental).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}", a.handleDeleteRental).Methods(http.MethodDelete)

	api.HandleFunc("/costs", a.handleListCosts).Methods(http.MethodGet)
	api.HandleFunc("/costs", a.handleCreateCost).Methods(http.MethodPost)
	api.HandleFunc("/costs/{id}", a.handleUpdateCost).Methods(http.MethodPut)
	api.HandleFunc("/costs/{id}", a.handleDeleteCost).Methods(http.MethodDelete)

	api.HandleFunc("/locations", a.handleListLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations", a.handleCreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations/{id}", a.handleUpdateLocation).Methods(http.MethodPut)
	api.HandleFunc("/locations/{id}", a.handleDeleteLocation).Methods(http.MethodDelete)

	api.HandleFunc("/fleet", a.handleListFleet).Methods(http.MethodGet)
	api.HandleFunc("/fleet", a.handleCreateFleetItem).Methods(http.MethodPost)
	api.HandleFunc("/fleet/{id}", a.handleUpdateFleetItem).Methods(http.MethodPut)
	api.HandleFunc("/fleet/{id}", a.handleDeleteFleetItem).Methods(http.MethodDelete)
	api.HandleFunc("/fleet/{id}/deactivate", a.handleDeactivateFleetItem).Methods(http.MethodPost)

	api.HandleFunc("/users", a.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", a.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", a.handleUpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", a.handleDeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/checklists", a.handleListChecklists).Methods(http.MethodGet)
	api.HandleFunc("/checklists", a.handleSaveChecklist).Methods(http.MethodPost)

	api.HandleFunc("/dashboard", a.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/company-profile", a.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/company-profile", a.handleSaveProfile).Methods(http.MethodPut)
	api.HandleFunc("/price-table", a.handleGetPrices).Methods(http.MethodGet)
	api.HandleFunc("/price-table", a.handleSavePrices).Methods(http.MethodPut)

	return root
}
