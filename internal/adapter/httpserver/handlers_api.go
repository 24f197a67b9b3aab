package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pscheid92/reviewpulse/internal/domain"
	apperrors "github.com/pscheid92/reviewpulse/internal/platform/errors"
)

const (
	msgReviewRequired = "Review is required"
	msgReviewNotText  = "Review must be a string"
	msgInvalidJSON    = "Invalid JSON body"
)

type analyzeResponse struct {
	Sentiment domain.Classification `json:"sentiment"`
}

type statsResponse struct {
	domain.Tally
	Total int64 `json:"total"`
}

func (s *Server) registerAPIRoutes() {
	api := s.echo.Group("/api",
		middleware.BodyLimit(s.config.MaxBodySize),
		newRateLimiter(s.config.RateLimitRPS, s.config.RateLimitBurst),
	)
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/stats", s.handleStats)
	api.POST("/stats/reset", s.handleResetStats)
}

func (s *Server) handleAnalyze(c echo.Context) error {
	body, err := decodeJSONBody(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return err
		}
		return apperrors.ValidationError(msgInvalidJSON).WithField("cause", err.Error())
	}

	review, verr := reviewFromBody(body)
	if verr != nil {
		return verr
	}

	result := s.app.Analyze(c.Request().Context(), review)

	if err := c.JSON(http.StatusOK, analyzeResponse{Sentiment: result}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// decodeJSONBody decodes exactly one JSON value; anything but whitespace after it is an error.
func decodeJSONBody(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("unexpected data after JSON value")
		}
		return nil, err
	}
	return body, nil
}

// reviewFromBody extracts the "review" field. Absent, null, "", false and 0 all count
// as missing; any other non-string value is rejected.
func reviewFromBody(body any) (string, *apperrors.Error) {
	obj, _ := body.(map[string]any)

	switch v := obj["review"].(type) {
	case nil:
		return "", apperrors.ValidationError(msgReviewRequired)
	case string:
		if v == "" {
			return "", apperrors.ValidationError(msgReviewRequired)
		}
		return v, nil
	case bool:
		if !v {
			return "", apperrors.ValidationError(msgReviewRequired)
		}
	case float64:
		if v == 0 {
			return "", apperrors.ValidationError(msgReviewRequired)
		}
	}
	return "", apperrors.ValidationError(msgReviewNotText).WithField("review_type", fmt.Sprintf("%T", obj["review"]))
}

func (s *Server) handleStats(c echo.Context) error {
	tally, err := s.app.Stats(c.Request().Context())
	if err != nil {
		return apperrors.ExternalError("failed to load stats", err)
	}

	if err := c.JSON(http.StatusOK, statsResponse{Tally: tally, Total: tally.Total()}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleResetStats(c echo.Context) error {
	if err := s.app.ResetStats(c.Request().Context()); err != nil {
		return apperrors.ExternalError("failed to reset stats", err)
	}

	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
