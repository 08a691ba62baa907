package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jetfleet-backoffice/internal/domain"
)

func TestFilter_Conjunction(t *testing.T) {
	rentals := []domain.Rental{
		{ClientName: "Joao Silva", Status: domain.RentalStatusScheduled, LocationName: "Marina"},
		{ClientName: "Joao Souza", Status: domain.RentalStatusCompleted, LocationName: "Marina"},
		{ClientName: "Ana Lima", Status: domain.RentalStatusScheduled, LocationName: "Praia"},
	}

	got := Filter(rentals,
		TextSearch("joao", func(r domain.Rental) []string { return []string{r.ClientName} }),
		Exact("Agendado", func(r domain.Rental) string { return string(r.Status) }),
	)

	assert.Len(t, got, 1)
	assert.Equal(t, "Joao Silva", got[0].ClientName)
}

func TestFilter_SentinelMatchesEverything(t *testing.T) {
	rentals := []domain.Rental{
		{Status: domain.RentalStatusScheduled},
		{Status: domain.RentalStatusCancelled},
	}

	for _, sentinel := range []string{"", "Todos", "Todos Status", "Todas"} {
		got := Filter(rentals, Exact(sentinel, func(r domain.Rental) string { return string(r.Status) }))
		assert.Len(t, got, 2, "sentinel %q must be a no-op", sentinel)
	}
}

func TestTextSearch_CaseInsensitiveAcrossFields(t *testing.T) {
	pred := TextSearch("999", func(r domain.Rental) []string {
		return []string{r.ClientName, r.ClientDocument, r.ClientPhone}
	})

	assert.True(t, pred(domain.Rental{ClientPhone: "11999990000"}))
	assert.False(t, pred(domain.Rental{ClientName: "Joao"}))

	upper := TextSearch("JOAO", func(r domain.Rental) []string { return []string{r.ClientName} })
	assert.True(t, upper(domain.Rental{ClientName: "joao silva"}))
}

func TestInMonth(t *testing.T) {
	pred := InMonth(1, 2026, func(r domain.Rental) string { return r.Date })

	assert.True(t, pred(domain.Rental{Date: "2026-01-15"}))
	assert.False(t, pred(domain.Rental{Date: "2026-02-15"}))
	assert.False(t, pred(domain.Rental{Date: "2025-01-15"}))
	assert.False(t, pred(domain.Rental{Date: "not-a-date"}), "unparseable dates never match a period")

	all := InMonth(0, 0, func(r domain.Rental) string { return r.Date })
	assert.True(t, all(domain.Rental{Date: "whatever"}))
}

func TestSortBy_Directions(t *testing.T) {
	items := []domain.Cost{
		{ID: "1", Value: 30},
		{ID: "2", Value: 10},
		{ID: "3", Value: 20},
	}

	asc := SortBy(items, Ascending, func(c domain.Cost) Key { return NumberKey(c.Value) })
	assert.Equal(t, []string{"2", "3", "1"}, ids(asc))

	desc := SortBy(items, Descending, func(c domain.Cost) Key { return NumberKey(c.Value) })
	assert.Equal(t, []string{"1", "3", "2"}, ids(desc))
}

func TestSortBy_NullsLastBothDirections(t *testing.T) {
	items := []domain.Rental{
		{ID: "1", Date: ""},
		{ID: "2", Date: "2026-01-10"},
		{ID: "3", Date: "2026-03-10"},
	}
	key := func(r domain.Rental) Key { return DateKey(r.Date) }

	asc := SortBy(items, Ascending, key)
	assert.Equal(t, "1", asc[len(asc)-1].ID)

	desc := SortBy(items, Descending, key)
	assert.Equal(t, "1", desc[len(desc)-1].ID, "missing dates sink in both directions")
	assert.Equal(t, "3", desc[0].ID)
}

func TestSortBy_StableForEqualKeys(t *testing.T) {
	items := []domain.Cost{
		{ID: "a", Value: 10},
		{ID: "b", Value: 10},
		{ID: "c", Value: 10},
	}
	sorted := SortBy(items, Descending, func(c domain.Cost) Key { return NumberKey(c.Value) })
	assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
}

func TestSortBy_LocaleAwareStrings(t *testing.T) {
	items := []domain.RentalLocation{
		{ID: "1", Name: "zebra"},
		{ID: "2", Name: "Árvore"},
		{ID: "3", Name: "banana"},
	}
	sorted := SortBy(items, Ascending, func(l domain.RentalLocation) Key { return StringKey(l.Name) })

	assert.Equal(t, "Árvore", sorted[0].Name, "accented initial sorts with its base letter")
	assert.Equal(t, "banana", sorted[1].Name)
	assert.Equal(t, "zebra", sorted[2].Name)
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	items := []domain.Cost{{ID: "1", Value: 2}, {ID: "2", Value: 1}}
	_ = SortBy(items, Ascending, func(c domain.Cost) Key { return NumberKey(c.Value) })
	assert.Equal(t, []string{"1", "2"}, ids(items))
}

func TestTableSort_Toggle(t *testing.T) {
	var ts TableSort

	ts.Toggle("value")
	assert.Equal(t, "value", ts.Key)
	assert.Equal(t, Ascending, ts.Dir)

	ts.Toggle("value")
	assert.Equal(t, Descending, ts.Dir)

	ts.Toggle("status")
	assert.Equal(t, "status", ts.Key)
	assert.Equal(t, Ascending, ts.Dir, "new column resets to ascending")
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		p := Paginate(items, 2, 10)
		assert.Equal(t, 2, p.Number)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 25, p.TotalItems)
		assert.Equal(t, 10, p.Items[0])
		assert.Len(t, p.Items, 10)
	})

	t.Run("last page is partial", func(t *testing.T) {
		p := Paginate(items, 3, 10)
		assert.Len(t, p.Items, 5)
	})

	t.Run("page clamps into range", func(t *testing.T) {
		assert.Equal(t, 1, Paginate(items, -4, 10).Number)
		assert.Equal(t, 3, Paginate(items, 99, 10).Number)
	})

	t.Run("empty collection is one empty page", func(t *testing.T) {
		p := Paginate([]int{}, 1, 10)
		assert.Equal(t, 1, p.Number)
		assert.Equal(t, 1, p.TotalPages)
		assert.Empty(t, p.Items)
	})
}

func TestSummarizeCosts(t *testing.T) {
	costs := []domain.Cost{
		{Value: 100, PaidValue: 60, IsPaid: false},
		{Value: 50, PaidValue: 50, IsPaid: true},
	}

	s := SummarizeCosts(costs)

	assert.Equal(t, 150.0, s.Total)
	assert.Equal(t, 110.0, s.Paid)
	assert.Equal(t, 40.0, s.PendingBalance, "only the unpaid record contributes")
	assert.Equal(t, 40.0, s.Discounts, "total minus paid across the whole set")
}

func TestSummarizeCosts_PaidRecordWithBalanceIsSettled(t *testing.T) {
	// A record flagged paid with a lower paid value still counts zero
	// pending, but widens the discounts figure.
	s := SummarizeCosts([]domain.Cost{{Value: 100, PaidValue: 70, IsPaid: true}})

	assert.Equal(t, 0.0, s.PendingBalance)
	assert.Equal(t, 30.0, s.Discounts)
}

func TestComputeDashboard(t *testing.T) {
	rentals := []domain.Rental{
		{Status: domain.RentalStatusCompleted, Date: "2026-01-10", Value: 100},
		{Status: domain.RentalStatusCancelled, Date: "2026-01-20", Value: 999},
		{Status: domain.RentalStatusScheduled, Date: "2026-03-05", Value: 200},
		{Status: domain.RentalStatusCompleted, Date: "2025-01-10", Value: 500},
	}
	fleet := []domain.FleetItem{
		{Status: domain.FleetStatusAvailable, Active: true},
		{Status: domain.FleetStatusMaintenance, Active: true},
		{Status: domain.FleetStatusAvailable, Active: false},
	}

	stats := ComputeDashboard(rentals, fleet, 2026)

	assert.Equal(t, 2, stats.RentalsByStatus[domain.RentalStatusCompleted])
	assert.Equal(t, 1, stats.RentalsByStatus[domain.RentalStatusCancelled])
	assert.Equal(t, 100.0, stats.RevenueByMonth[0], "cancelled rentals earn nothing")
	assert.Equal(t, 2, stats.RentalsByMonth[0], "cancelled rentals still count as bookings")
	assert.Equal(t, 200.0, stats.RevenueByMonth[2])
	assert.Zero(t, stats.RevenueByMonth[11])
	assert.Equal(t, 1, stats.FleetAvailable, "deactivated items are excluded")
	assert.Equal(t, 1, stats.FleetMaintenance)
}

func TestParseDateUTC(t *testing.T) {
	for _, iso := range []string{"2026-01-02", "2026-01-02T10:30:00", "2026-01-02T10:30:00Z"} {
		parsed, ok := ParseDateUTC(iso)
		assert.True(t, ok, iso)
		assert.Equal(t, 2026, parsed.Year())
	}

	_, ok := ParseDateUTC("02/01/2026")
	assert.False(t, ok)
}

func ids(costs []domain.Cost) []string {
	var out []string
	for _, c := range costs {
		out = append(out, c.ID)
	}
	return out
}
