package domain

const DefaultPageSize = 20

// PageRequest is a 1-based page-number window.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

func (p PageRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

// Page is one window of a result set together with the total row count.
type Page[T any] struct {
	Items []T
	Total int
}

func (p PageRequest) HasNext(total int) bool {
	return p.Offset()+p.Limit() < total
}

func (p PageRequest) HasPrevious() bool {
	return p.Page > 1
}

// Validate reports ErrInvalidPage for a page past the last one. The first
// page is valid even for an empty result.
func (p PageRequest) Validate(total int) error {
	if p.Page < 1 || (p.Page > 1 && p.Offset() >= total) {
		return ErrInvalidPage
	}
	return nil
}
