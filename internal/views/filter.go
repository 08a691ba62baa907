// Package views provides the pure derived-view computations (filtering,
// sorting, pagination, aggregation) consumed by the presentation layer.
// Nothing here mutates the entity store.
package views

import "strings"

// Predicate decides whether an item passes one active filter.
type Predicate[T any] func(T) bool

// Filter returns the items satisfying every predicate (conjunction).
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// IsSentinel reports whether a dropdown value is the match-everything
// sentinel ("Todos", "Todos Status", "Todas", ...) or simply unset.
func IsSentinel(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.HasPrefix(v, "Todos") || strings.HasPrefix(v, "Todas")
}

// TextSearch matches when the query is a case-insensitive substring of
// any of the extracted fields. An empty query matches everything.
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if q == "" {
			return true
		}
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// Exact matches when the extracted field equals the wanted value. A
// sentinel value turns the predicate into a no-op.
func Exact[T any](want string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if IsSentinel(want) {
			return true
		}
		return field(item) == want
	}
}

// InMonth matches items whose ISO date falls in the given month and
// year, extracted with UTC calendar semantics. Sentinel month (0) or
// year (0) matches everything on that component.
func InMonth[T any](month int, year int, date func(T) string) Predicate[T] {
	return func(item T) bool {
		if month == 0 && year == 0 {
			return true
		}
		m, y, ok := MonthYearUTC(date(item))
		if !ok {
			return false
		}
		if month != 0 && int(m) != month {
			return false
		}
		if year != 0 && y != year {
			return false
		}
		return true
	}
}
