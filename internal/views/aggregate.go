package views

import "jetfleet-backoffice/internal/domain"

// CostSummary carries the financial summary cards. It is computed over
// the period/search-filtered base set, before any paid/pending status
// filter the table itself applies, so the cards reflect the broader
// context.
type CostSummary struct {
	Total          float64 `json:"total"`
	Paid           float64 `json:"paid"`
	PendingBalance float64 `json:"pendingBalance"`
	Discounts      float64 `json:"discounts"`
}

// SummarizeCosts computes the aggregate cards. The pending balance only
// counts records still marked unpaid; the discounts figure is the legacy
// total-minus-paid across the whole set regardless of the paid flag.
func SummarizeCosts(costs []domain.Cost) CostSummary {
	var s CostSummary
	for _, c := range costs {
		s.Total += c.Value
		s.Paid += c.PaidValue
		if !c.IsPaid {
			s.PendingBalance += c.Value - c.PaidValue
		}
	}
	s.Discounts = s.Total - s.Paid
	return s
}
