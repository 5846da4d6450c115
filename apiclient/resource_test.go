package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNewResourceNormalizesPath(t *testing.T) {
	client, err := New(Config{BaseURL: "https://api.nordkost.no"})
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{path: "/v1/ansatte/", want: "/v1/ansatte/"},
		{path: "/v1/ansatte", want: "/v1/ansatte/"},
		{path: "v1/ansatte", want: "/v1/ansatte/"},
	}

	for _, tt := range tests {
		r := NewResource[testRecord](client, tt.path)
		assert.Equal(t, tt.want, r.Path())
	}
}

func TestResourceListSendsQuery(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"items": [], "total": 0, "page": 2, "page_size": 10, "total_pages": 0}`))
	})

	r := NewResource[testRecord](client, "/v1/ansatte/")
	params := &ListParams{Page: 2, PageSize: 10, Search: "Thor"}
	params.Filter("gruppe_id", "1", "2")

	res, err := r.List(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "10", query.Get("page_size"))
	assert.Equal(t, "Thor", query.Get("search"))
	assert.Equal(t, []string{"1", "2"}, query["gruppe_id"])
	assert.Equal(t, 2, res.Page)
}

func TestResourceListNilParams(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	r := NewResource[testRecord](client, "/v1/ansatte/")
	res, err := r.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, rawQuery)
	assert.Empty(t, res.Items)
}

func TestResourceListRejectsInvalidParamsBeforeRequest(t *testing.T) {
	requested := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	r := NewResource[testRecord](client, "/v1/ansatte/")
	_, err := r.List(context.Background(), &ListParams{Page: -1})

	assert.Equal(t, KindValidation, KindOf(err))
	assert.False(t, requested)
}

func TestResourceGet(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"id": 7, "navn": "Komle"}`))
	})

	r := NewResource[testRecord](client, "/v1/produkter/")
	record, err := r.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "/v1/produkter/7", path)
	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, "Komle", record.Navn)
}

func TestResourceCreateReturnsCanonicalRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "navn": "Sodd"}`))
	})

	r := NewResource[testRecord](client, "/v1/produkter/")
	record, err := r.Create(context.Background(), map[string]any{"navn": "Sodd"})
	require.NoError(t, err)

	assert.Equal(t, int64(12), record.ID)
}

func TestResourceUpdateNilPatchSendsEmptyObject(t *testing.T) {
	var method, body string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.Write([]byte(`{"id": 3, "navn": "Pinnekjøtt"}`))
	})

	r := NewResource[testRecord](client, "/v1/produkter/")
	_, err := r.Update(context.Background(), 3, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "{}", body)
}

func TestResourceDelete(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	r := NewResource[testRecord](client, "/v1/produkter/")
	err := r.Delete(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/v1/produkter/9", path)
}

func TestResourceSurfacesBackendErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "produkter: ikke funnet"}`))
	})

	r := NewResource[testRecord](client, "/v1/produkter/")
	_, err := r.Get(context.Background(), 404)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "produkter: ikke funnet", apiErr.Message)
}
