package models

// DefaultPerPage размер страницы по умолчанию
const DefaultPerPage = 20

// Pagination is a 1-based page request
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// Offset returns the number of items to skip
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Valid reports whether page and perPage are positive
func (p Pagination) Valid() bool {
	return p.Page >= 1 && p.PerPage >= 1
}

// Paginate returns the page of items selected by p. A nil p returns items unchanged.
// Pages past the end yield an empty slice.
func Paginate[T any](items []T, p *Pagination) []T {
	if p == nil {
		return items
	}
	start := p.Offset()
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := min(start+p.PerPage, len(items))
	return items[start:end]
}
