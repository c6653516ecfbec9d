package dto

import (
	"net/url"
	"strconv"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ToPageResponse converts every item with conv and links the neighbouring
// pages relative to self. self must be the absolute URL of the current request.
func ToPageResponse[D, T any](p *domain.Page[D], req domain.PageRequest, self *url.URL, conv func(D) T) PageResponse[T] {
	results := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		results = append(results, conv(item))
	}

	resp := PageResponse[T]{Count: p.Total, Results: results}
	if req.HasNext(p.Total) {
		resp.Next = pageLink(self, req.Page+1)
	}
	if req.HasPrevious() {
		resp.Previous = pageLink(self, req.Page-1)
	}
	return resp
}

// pageLink drops the page parameter for the first page.
func pageLink(self *url.URL, page int) *string {
	u := *self
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	s := u.String()
	return &s
}
