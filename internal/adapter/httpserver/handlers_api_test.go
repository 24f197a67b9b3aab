package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/pscheid92/reviewpulse/internal/domain"
	"github.com/pscheid92/reviewpulse/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAnalyze_Classifications(t *testing.T) {
	tests := []struct {
		name   string
		review string
		want   string
	}{
		{"positive", "this movie was great and amazing", "positive"},
		{"negative", "this was a terrible and boring film", "negative"},
		{"tie", "good bad", "neutral"},
		{"case and punctuation", "GREAT!!! Loved it, best film ever", "positive"},
		{"no lexicon words", "a film about a lighthouse keeper", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &mockAppService{})

			rec := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":`+strconv.Quote(tt.review)+`}`)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"sentiment":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestHandleAnalyze_PassesReviewThrough(t *testing.T) {
	app := &mockAppService{
		analyzeFn: func(context.Context, string) domain.Classification { return domain.ClassificationNegative },
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":"  spaced  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sentiment":"negative"}`, rec.Body.String())
	assert.Equal(t, []string{"  spaced  "}, app.analyzed)
}

func TestHandleAnalyze_WhitespaceReviewIsAccepted(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":"   "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sentiment":"neutral"}`, rec.Body.String())
}

func TestHandleAnalyze_ExtraFieldsIgnored(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":"awful","rating":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sentiment":"negative"}`, rec.Body.String())
}

func TestHandleAnalyze_ReviewRequired(t *testing.T) {
	bodies := map[string]string{
		"missing field": `{}`,
		"null":          `{"review":null}`,
		"empty string":  `{"review":""}`,
		"false":         `{"review":false}`,
		"zero":          `{"review":0}`,
		"array body":    `["great"]`,
		"string body":   `"great"`,
		"null body":     `null`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			app := &mockAppService{}
			srv := newTestServer(t, app)

			rec := doRequest(srv, http.MethodPost, "/api/analyze", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Review is required"}`, rec.Body.String())
			assert.Empty(t, app.analyzed)
		})
	}
}

func TestHandleAnalyze_ReviewMustBeString(t *testing.T) {
	bodies := map[string]string{
		"true":   `{"review":true}`,
		"number": `{"review":42}`,
		"object": `{"review":{"text":"great"}}`,
		"array":  `{"review":["great"]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, &mockAppService{})

			rec := doRequest(srv, http.MethodPost, "/api/analyze", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Review must be a string"}`, rec.Body.String())
		})
	}
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	for _, body := range []string{`{"review":`, `not json`} {
		srv := newTestServer(t, &mockAppService{})

		rec := doRequest(srv, http.MethodPost, "/api/analyze", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
	}
}

func TestHandleAnalyze_TrailingDataRejected(t *testing.T) {
	for _, body := range []string{`{"review":"good"} trailing`, `{"review":"good"}{}`, `{"review":"good"} 1`} {
		app := &mockAppService{}
		srv := newTestServer(t, app)

		rec := doRequest(srv, http.MethodPost, "/api/analyze", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
		assert.Empty(t, app.analyzed)
	}
}

func TestHandleAnalyze_TrailingWhitespaceAccepted(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodPost, "/api/analyze", "{\"review\":\"good\"}\n\t ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sentiment":"positive"}`, rec.Body.String())
}

func TestHandleAnalyze_EmptyBody(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})

	rec := doRequest(srv, http.MethodPost, "/api/analyze", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())
}

func TestHandleAnalyze_BodyTooLarge(t *testing.T) {
	srv := newTestServer(t, &mockAppService{})
	body := `{"review":"` + strings.Repeat("good ", 400) + `"}`

	rec := doRequest(srv, http.MethodPost, "/api/analyze", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestHandleStats(t *testing.T) {
	app := &mockAppService{
		statsFn: func(context.Context) (domain.Tally, error) {
			return domain.Tally{Positive: 3, Negative: 2, Neutral: 1}, nil
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"positive":3,"negative":2,"neutral":1,"total":6}`, rec.Body.String())
}

func TestHandleStats_StoreError(t *testing.T) {
	app := &mockAppService{
		statsFn: func(context.Context) (domain.Tally, error) {
			return domain.Tally{}, errors.New("redis: connection refused")
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodGet, "/api/stats", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"failed to load stats"}`, rec.Body.String())
}

func TestHandleResetStats(t *testing.T) {
	called := false
	app := &mockAppService{
		resetStatsFn: func(context.Context) error {
			called = true
			return nil
		},
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodPost, "/api/stats/reset", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.True(t, called)
}

func TestHandleResetStats_StoreError(t *testing.T) {
	app := &mockAppService{
		resetStatsFn: func(context.Context) error { return errors.New("READONLY") },
	}
	srv := newTestServer(t, app)

	rec := doRequest(srv, http.MethodPost, "/api/stats/reset", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"failed to reset stats"}`, rec.Body.String())
}

func TestAPI_RateLimited(t *testing.T) {
	srv := newTestServer(t, &mockAppService{}, withConfig(func(c *config.Config) {
		c.RateLimitRPS = 0.01
		c.RateLimitBurst = 1
	}))

	first := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":"good"}`)
	second := doRequest(srv, http.MethodPost, "/api/analyze", `{"review":"good"}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, second.Body.String())
}
