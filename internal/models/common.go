package models

// Pagination describes paging metadata returned alongside list payloads.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// TotalPages derives the page count from the totals.
func (p Pagination) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := p.TotalCount / p.PageSize
	if p.TotalCount%p.PageSize != 0 {
		pages++
	}
	return pages
}
