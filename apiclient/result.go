package apiclient

import (
	"bytes"
	"encoding/json"
)

// ListResult is the paginated list shape returned by the backend.
type ListResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// decodeList decodes a raw list response body. Some legacy endpoints return
// a bare array instead of the paginated envelope; those are wrapped as a
// single synthesized page. Paginated bodies pass through untouched.
func decodeList[T any](data []byte) (ListResult[T], error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return ListResult[T]{}, malformedError(err)
		}
		n := len(items)
		return ListResult[T]{
			Items:      items,
			Total:      n,
			Page:       1,
			PageSize:   n,
			TotalPages: 1,
		}, nil
	}

	var res ListResult[T]
	if err := json.Unmarshal(data, &res); err != nil {
		return ListResult[T]{}, malformedError(err)
	}
	return res, nil
}
