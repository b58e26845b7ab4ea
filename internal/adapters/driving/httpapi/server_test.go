package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoAsk answers every question with a fixed transform, capturing calls.
type echoAsk struct {
	questions []string
}

func (e *echoAsk) Ask(_ context.Context, question string) string {
	e.questions = append(e.questions, question)
	return "answer to: " + question
}

func newTestServer(t *testing.T) (*httptest.Server, *echoAsk) {
	t.Helper()
	ask := &echoAsk{}
	srv := httptest.NewServer(New(Config{Ask: ask}))
	t.Cleanup(srv.Close)
	return srv, ask
}

func postAsk(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/ask", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAskEndpoint(t *testing.T) {
	srv, ask := newTestServer(t)

	resp := postAsk(t, srv.URL, `{"query": "How many Nike shirts do we have?"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "answer to: How many Nike shirts do we have?", body.Answer)
	assert.Equal(t, []string{"How many Nike shirts do we have?"}, ask.questions)
}

func TestAskTrimsWhitespace(t *testing.T) {
	srv, ask := newTestServer(t)

	resp := postAsk(t, srv.URL, `{"query": "  what colors are available?  "}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"what colors are available?"}, ask.questions)
}

func TestAskRejectsEmptyQuery(t *testing.T) {
	srv, ask := newTestServer(t)

	for _, body := range []string{`{"query": ""}`, `{"query": "   "}`} {
		resp := postAsk(t, srv.URL, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
	}

	// A missing field fails schema validation before the handler runs.
	resp := postAsk(t, srv.URL, `{}`)
	assert.GreaterOrEqual(t, resp.StatusCode, http.StatusBadRequest)

	assert.Empty(t, ask.questions, "invalid requests must not reach the pipeline")
}

func TestAskRejectsMalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postAsk(t, srv.URL, `{"query": `)
	assert.GreaterOrEqual(t, resp.StatusCode, http.StatusBadRequest)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"), "server assigns an id when none given")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "test-id-123")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "test-id-123", resp2.Header.Get("X-Request-Id"), "client ids are echoed back")
}
