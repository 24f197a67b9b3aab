package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleIndex(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Movie Review Sentiment Analysis")
	assert.Contains(t, body, "Analyze Sentiment")
	assert.Contains(t, body, "/api/analyze")
	assert.Contains(t, body, "reviewpulse dev")
}

func TestHandleIndex_ErrorStates(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	body := doRequest(srv, http.MethodGet, "/", "").Body.String()

	// A 400 body carries no sentiment and clears the result; only a failed request shows an error.
	assert.Contains(t, body, "if (data.sentiment)")
	assert.Contains(t, body, "clearResult();")
	assert.Equal(t, 1, strings.Count(body, `show("Error occurred")`))
	assert.NotContains(t, body, `data.sentiment || "Error occurred"`)
}
