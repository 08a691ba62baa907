package domain

type FleetStatus string

const (
	FleetStatusAvailable   FleetStatus = "Disponivel"
	FleetStatusMaintenance FleetStatus = "Manutencao"
	FleetStatusUnavailable FleetStatus = "Indisponivel"
)

type FleetCategory string

const (
	FleetCategoryJetSki FleetCategory = "Jet Ski"
	FleetCategoryBoat   FleetCategory = "Lancha"
)

// FleetItem is a vehicle in the fleet. Active is an administrative
// soft-delete indicator independent of the operational Status: an item in
// maintenance is still Active, a deactivated item keeps its last Status.
type FleetItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Color    string        `json:"color"`
	Plate    string        `json:"plate"`
	Status   FleetStatus   `json:"status"`
	Category FleetCategory `json:"category"`
	Active   bool          `json:"active"`
}
