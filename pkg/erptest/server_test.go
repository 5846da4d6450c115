package erptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, token string, resources map[string]ResourceOptions) *httptest.Server {
	t.Helper()

	server := NewServer(token)
	for name, opts := range resources {
		require.NoError(t, server.Resource(name, opts))
	}
	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, payload)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestServerRequiresBearerToken(t *testing.T) {
	server := NewServer("hemmelig")
	require.NoError(t, server.Resource("ansatte", ResourceOptions{}))
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/ansatte/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/ansatte/", "feil", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/ansatte/", "hemmelig", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerPaginatedEnvelope(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("produkter", ResourceOptions{}))
	SeedProdukter(server, 12)
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/produkter/?page=2&page_size=5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Items      []map[string]any `json:"items"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		PageSize   int              `json:"page_size"`
		TotalPages int              `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	assert.Len(t, envelope.Items, 5)
	assert.Equal(t, 12, envelope.Total)
	assert.Equal(t, 2, envelope.Page)
	assert.Equal(t, 3, envelope.TotalPages)
}

func TestServerBareArrayMode(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("avdelinger", ResourceOptions{BareArray: true}))
	server.Seed("avdelinger", map[string]any{"navn": "Kjøkken"})
	server.Seed("avdelinger", map[string]any{"navn": "Levering"})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	_, body := doJSON(t, http.MethodGet, srv.URL+"/v1/avdelinger/", "", nil)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, 2)
}

func TestServerFilterSearchAndSort(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("produkter", ResourceOptions{}))
	server.Seed("produkter", map[string]any{"navn": "Brunost", "gruppe_id": int64(1)})
	server.Seed("produkter", map[string]any{"navn": "Fiskesuppe", "gruppe_id": int64(2)})
	server.Seed("produkter", map[string]any{"navn": "Aquavit", "gruppe_id": int64(3)})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	// Repeated filter keys are OR-ed.
	_, body := doJSON(t, http.MethodGet, srv.URL+"/v1/produkter/?gruppe_id=1&gruppe_id=3", "", nil)
	var envelope struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Len(t, envelope.Items, 2)

	_, body = doJSON(t, http.MethodGet, srv.URL+"/v1/produkter/?search=suppe", "", nil)
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Len(t, envelope.Items, 1)
	assert.Equal(t, "Fiskesuppe", envelope.Items[0]["navn"])

	_, body = doJSON(t, http.MethodGet, srv.URL+"/v1/produkter/?sort_by=navn&sort_order=desc", "", nil)
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Len(t, envelope.Items, 3)
	assert.Equal(t, "Fiskesuppe", envelope.Items[0]["navn"])
	assert.Equal(t, "Aquavit", envelope.Items[2]["navn"])
}

func TestServerSchemaValidation(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("ansatte", ResourceOptions{Schema: AnsattSchema}))
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/ansatte/", "", map[string]any{
		"fornavn":   "",
		"etternavn": "Egner",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var problem struct {
		Detail string              `json:"detail"`
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &problem))
	assert.Equal(t, "valideringsfeil", problem.Detail)
	assert.NotEmpty(t, problem.Errors["fornavn"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/ansatte/", "", map[string]any{
		"fornavn":   "Thorbjørn",
		"etternavn": "Egner",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, server.Count("ansatte"))
}

func TestServerCRUDRoundTrip(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("kunder", ResourceOptions{Schema: KundeSchema}))
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/kunder/", "", map[string]any{"navn": "Fjordmat AS"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var record map[string]any
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, float64(1), record["id"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/kunder/1", "", map[string]any{"epost": "post@fjordmat.no"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, "Fjordmat AS", record["navn"], "absent fields stay untouched")
	assert.Equal(t, "post@fjordmat.no", record["epost"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/kunder/1", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/kunder/1", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/kunder/1", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, server.Count("kunder"))
}

func TestServerReadOnlyResource(t *testing.T) {
	server := NewServer("")
	require.NoError(t, server.Resource("rapporter", ResourceOptions{ReadOnly: true}))
	server.Seed("rapporter", map[string]any{"navn": "Ukesrapport"})
	srv := httptest.NewServer(server.Handler())
	defer srv.Close()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/rapporter/", "", map[string]any{"navn": "Ny"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/rapporter/1", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/rapporter/1", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
