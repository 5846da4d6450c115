package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Resource is a typed accessor for one backend collection. All five
// operations are pure pass-throughs to a single HTTP verb each; there are no
// retries, no payload validation, and no optimistic local state.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a Resource to the collection at path, e.g. "/v1/ansatte/".
// The backend routes the collection form only with a trailing slash, so one
// is appended when missing.
func NewResource[T any](client *Client, path string) *Resource[T] {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return &Resource[T]{client: client, path: path}
}

// Path returns the collection path the resource is bound to.
func (r *Resource[T]) Path() string {
	return r.path
}

// List fetches a page of records. A nil params fetches with the backend's
// defaults. Legacy bare-array responses are normalized into a single page.
func (r *Resource[T]) List(ctx context.Context, params *ListParams) (ListResult[T], error) {
	var query map[string][]string
	if params != nil {
		if err := params.Validate(); err != nil {
			return ListResult[T]{}, &Error{Kind: KindValidation, Message: err.Error(), cause: err}
		}
		query = params.Encode()
	}

	data, err := r.client.do(ctx, http.MethodGet, r.path, query, nil)
	if err != nil {
		return ListResult[T]{}, err
	}
	return decodeList[T](data)
}

// Get fetches the record with the given id. A missing id surfaces as
// KindNotFound; the resource does not itself validate the id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	data, err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, nil)
	if err != nil {
		return out, err
	}
	return out, decodeItem(data, &out)
}

// Create posts a new record and returns the server's canonical
// representation. Identity fields are server-assigned; body must not carry
// them.
func (r *Resource[T]) Create(ctx context.Context, body any) (T, error) {
	var out T
	data, err := r.client.do(ctx, http.MethodPost, r.path, nil, body)
	if err != nil {
		return out, err
	}
	return out, decodeItem(data, &out)
}

// Update sends a partial update: only the fields present in patch are sent,
// absent fields are left untouched server-side. A nil patch sends an empty
// object and alters nothing.
func (r *Resource[T]) Update(ctx context.Context, id int64, patch any) (T, error) {
	var out T
	if patch == nil {
		patch = map[string]any{}
	}
	data, err := r.client.do(ctx, http.MethodPut, r.itemPath(id), nil, patch)
	if err != nil {
		return out, err
	}
	return out, decodeItem(data, &out)
}

// Delete removes the record with the given id.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
	return err
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + strconv.FormatInt(id, 10)
}

func decodeItem(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return malformedError(err)
	}
	return nil
}
