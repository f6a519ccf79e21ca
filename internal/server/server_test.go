package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/itemizer/internal/ingest"
	"github.com/abhisek/itemizer/internal/store"
)

const tfngContent = "Do the following statements agree with the information in the passage? TRUE FALSE NOT GIVEN\n1. The bridge was built in 1990."

func newTestServer(t *testing.T, withStore bool, maxBytes int64) *httptest.Server {
	t.Helper()
	var items store.ItemRepo
	if withStore {
		s, err := store.Open(filepath.Join(t.TempDir(), "server.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		items = s.ItemRepo()
	}
	svc := ingest.NewService(ingest.Options{Items: items})
	srv := httptest.NewServer(New(svc, Options{Items: items, MaxContentBytes: maxBytes}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}
	resp, err := http.Post(url, "application/json", strings.NewReader(string(b)))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func get(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, false, 0)
	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get("Content-Type"))
}

func TestClassify_ReturnsBothObjects(t *testing.T) {
	srv := newTestServer(t, false, 0)

	resp, body := post(t, srv.URL+"/v1/classify", map[string]any{"content": tfngContent})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)

	cls, ok := body["classification"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Reading", cls["skill"])
	assert.Equal(t, "True / False / Not Given", cls["item_type"])
	assert.Equal(t, "Logic-based", cls["category"])

	ext, ok := body["extracted"].(map[string]any)
	require.True(t, ok)
	questions, ok := ext["questions"].([]any)
	require.True(t, ok)
	assert.Len(t, questions, 1)
}

func TestClassify_HTML(t *testing.T) {
	srv := newTestServer(t, false, 0)

	resp, body := post(t, srv.URL+"/v1/classify", map[string]any{
		"content": "<p>You should say:</p><ul><li>who</li><li>when</li></ul>",
		"html":    true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ext := body["extracted"].(map[string]any)
	assert.Equal(t, []any{"who", "when"}, ext["cue_points"])
}

func TestClassify_BadRequests(t *testing.T) {
	srv := newTestServer(t, false, 32)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"malformed json", "{nope", http.StatusBadRequest},
		{"missing content", map[string]any{"html": true}, http.StatusBadRequest},
		{"unknown field", map[string]any{"content": "x", "extra": 1}, http.StatusBadRequest},
		{"empty content", map[string]any{"content": ""}, http.StatusUnprocessableEntity},
		{"whitespace content", map[string]any{"content": "   "}, http.StatusUnprocessableEntity},
		{"content too large", map[string]any{"content": strings.Repeat("a", 33)}, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/v1/classify", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestBatch_IsolatesFailures(t *testing.T) {
	srv := newTestServer(t, false, 0)

	resp, body := post(t, srv.URL+"/v1/classify/batch", map[string]any{
		"items": []map[string]any{
			{"content": tfngContent},
			{"content": " "},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := body["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	second := results[1].(map[string]any)
	assert.NotNil(t, first["classification"])
	assert.Nil(t, first["error"])
	assert.Equal(t, float64(1), second["index"])
	assert.Contains(t, second["error"], "empty")
}

func TestBatch_Empty(t *testing.T) {
	srv := newTestServer(t, false, 0)
	resp, _ := post(t, srv.URL+"/v1/classify/batch", map[string]any{"items": []any{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTaxonomy(t *testing.T) {
	srv := newTestServer(t, false, 0)
	resp, body := get(t, srv.URL+"/v1/taxonomy")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["skills"], 4)
}

func TestItems_Lifecycle(t *testing.T) {
	srv := newTestServer(t, true, 0)

	resp, body := post(t, srv.URL+"/v1/items", map[string]any{"content": tfngContent})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	item := body["item"].(map[string]any)
	id := item["id"].(string)
	assert.Equal(t, "pending_review", item["status"])
	assert.Equal(t, "true_false_not_given", item["storage_code"])

	resp, body = get(t, srv.URL+"/v1/items?status=pending_review&skill=Reading")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 1)

	resp, body = post(t, srv.URL+"/v1/items/"+id+"/approve", map[string]any{"note": "ok"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approved", body["status"])

	resp, body = get(t, srv.URL+"/v1/items/"+id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approved", body["status"])

	resp, body = get(t, srv.URL+"/v1/items?status=pending_review")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 0)

	resp, _ = post(t, srv.URL+"/v1/items/"+id+"/reject", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestItems_Errors(t *testing.T) {
	srv := newTestServer(t, true, 0)

	resp, _ := post(t, srv.URL+"/v1/items/missing/approve", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/v1/items/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/v1/items?status=archived")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/v1/items?skill=Maths")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/v1/items?limit=-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItems_NoStore(t *testing.T) {
	srv := newTestServer(t, false, 0)

	resp, _ := get(t, srv.URL+"/v1/items")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = post(t, srv.URL+"/v1/items", map[string]any{"content": tfngContent})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
