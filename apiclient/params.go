package apiclient

import (
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SortOrder is the direction of a sorted list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Reserved query parameter names. Entity-specific filters may use any other
// key; a filter that collides with a reserved name is dropped so the typed
// fields stay authoritative.
const (
	paramPage      = "page"
	paramPageSize  = "page_size"
	paramSearch    = "search"
	paramSortBy    = "sort_by"
	paramSortOrder = "sort_order"
)

// ListParams describes a list query. The zero value of every field means
// "not set" and is omitted from the wire request rather than sent as an
// empty string.
type ListParams struct {
	// Page is 1-based.
	Page     int
	PageSize int
	Search   string
	SortBy   string
	// SortOrder is only meaningful together with SortBy.
	SortOrder SortOrder

	// Filters holds entity-specific filter parameters. Multi-valued filters
	// serialize as repeated key=value pairs, one per element.
	Filters map[string][]string
}

// Filter appends values under key and returns the receiver for chaining.
func (p *ListParams) Filter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}
	p.Filters[key] = append(p.Filters[key], values...)
	return p
}

// Validate checks the descriptor invariants: a set page is >= 1, a set page
// size is > 0, and a set sort order is one of asc/desc.
func (p ListParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Min(0)),
		validation.Field(&p.PageSize, validation.Min(0)),
		validation.Field(&p.SortOrder, validation.In(SortAsc, SortDesc)),
	)
}

// Encode serializes the set fields as query parameters. Unset fields never
// appear in the output.
func (p ListParams) Encode() url.Values {
	q := url.Values{}

	if p.Page > 0 {
		q.Set(paramPage, strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set(paramPageSize, strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set(paramSearch, p.Search)
	}
	if p.SortBy != "" {
		q.Set(paramSortBy, p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set(paramSortOrder, string(p.SortOrder))
	}

	for key, values := range p.Filters {
		if isReservedParam(key) {
			continue
		}
		for _, v := range values {
			q.Add(key, v)
		}
	}

	return q
}

// Offset converts the 1-based page and page size into a record offset.
func (p ListParams) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

func isReservedParam(key string) bool {
	switch key {
	case paramPage, paramPageSize, paramSearch, paramSortBy, paramSortOrder:
		return true
	}
	return false
}
