package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/reviewpulse/internal/platform/version"
)

const (
	startupProbeTimeout   = 2 * time.Second
	readinessProbeTimeout = 5 * time.Second
)

// HealthCheck is a named dependency probe run by /health/startup and /health/ready.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthReport struct {
	Status      string            `json:"status"`
	FailedCheck string            `json:"failed_check,omitempty"`
	Error       string            `json:"error,omitempty"`
	Checks      map[string]string `json:"checks,omitempty"`
}

type livenessReport struct {
	Status  string  `json:"status"`
	Uptime  float64 `json:"uptime"`
	Version string  `json:"version"`
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/startup", s.probe(startupProbeTimeout))
	s.echo.GET("/health/ready", s.probe(readinessProbeTimeout))
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/version", s.handleVersion)
}

func (s *Server) handleLiveness(c echo.Context) error {
	report := livenessReport{
		Status:  "ok",
		Uptime:  s.clock.Since(s.startTime).Seconds(),
		Version: version.Version,
	}
	if err := c.JSON(http.StatusOK, report); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}
	return nil
}

// probe builds a handler that runs every health check under one deadline.
func (s *Server) probe(timeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		status, report := s.runHealthChecks(ctx)
		if err := c.JSON(status, report); err != nil {
			return fmt.Errorf("failed to send JSON response: %w", err)
		}
		return nil
	}
}

// runHealthChecks stops at the first failing check.
func (s *Server) runHealthChecks(ctx context.Context) (int, healthReport) {
	report := healthReport{Status: "ready"}
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			report.Status = "unhealthy"
			report.FailedCheck = hc.Name
			report.Error = err.Error()
			return http.StatusServiceUnavailable, report
		}
		if report.Checks == nil {
			report.Checks = make(map[string]string, len(s.healthChecks))
		}
		report.Checks[hc.Name] = "ok"
	}
	return http.StatusOK, report
}

func (s *Server) handleVersion(c echo.Context) error {
	if err := c.JSON(http.StatusOK, version.Get()); err != nil {
		return fmt.Errorf("failed to write version response: %w", err)
	}
	return nil
}
