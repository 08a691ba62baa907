package views

// DefaultPageSize is the fixed page size observed across every screen.
const DefaultPageSize = 10

// Page is one slice of the filtered+sorted sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"number"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate clamps the requested page into [1, totalPages] and returns
// that slice. An empty collection yields a single empty page ("no
// results"), never a zero page count.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      append([]T(nil), items[start:end]...),
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
