package views

import "jetfleet-backoffice/internal/domain"

// DashboardStats feeds the dashboard cards and charts.
type DashboardStats struct {
	RentalsByStatus  map[domain.RentalStatus]int `json:"rentalsByStatus"`
	RevenueByMonth   [12]float64                 `json:"revenueByMonth"`
	RentalsByMonth   [12]int                     `json:"rentalsByMonth"`
	FleetAvailable   int                         `json:"fleetAvailable"`
	FleetMaintenance int                         `json:"fleetMaintenance"`
	FleetUnavailable int                         `json:"fleetUnavailable"`
}

// ComputeDashboard derives the dashboard statistics for one year.
// Cancelled rentals count toward status totals but not revenue. Only
// administratively active fleet items are counted.
func ComputeDashboard(rentals []domain.Rental, fleet []domain.FleetItem, year int) DashboardStats {
	stats := DashboardStats{
		RentalsByStatus: map[domain.RentalStatus]int{},
	}

	for _, r := range rentals {
		stats.RentalsByStatus[r.Status]++
		month, y, ok := MonthYearUTC(r.Date)
		if !ok || y != year {
			continue
		}
		stats.RentalsByMonth[int(month)-1]++
		if r.Status != domain.RentalStatusCancelled {
			stats.RevenueByMonth[int(month)-1] += r.Value
		}
	}

	for _, f := range fleet {
		if !f.Active {
			continue
		}
		switch f.Status {
		case domain.FleetStatusAvailable:
			stats.FleetAvailable++
		case domain.FleetStatusMaintenance:
			stats.FleetMaintenance++
		case domain.FleetStatusUnavailable:
			stats.FleetUnavailable++
		}
	}

	return stats
}
