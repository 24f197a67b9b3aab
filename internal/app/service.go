package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pscheid92/reviewpulse/internal/domain"
	"github.com/pscheid92/reviewpulse/internal/sentiment"
)

// Observer receives classification events for metrics.
type Observer interface {
	ObserveAnalysis(c domain.Classification, reviewBytes int)
	ObserveTallyError(operation string)
}

type noopObserver struct{}

func (noopObserver) ObserveAnalysis(domain.Classification, int) {}
func (noopObserver) ObserveTallyError(string)                  {}

// Service is the application layer. It orchestrates all use cases.
type Service struct {
	tally    domain.TallyStore
	observer Observer
}

// NewService creates the application layer service.
// observer may be nil, in which case events are dropped.
func NewService(tally domain.TallyStore, observer Observer) *Service {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Service{tally: tally, observer: observer}
}

// Analyze classifies a review and records the result. Recording is best-effort:
// a tally store failure is logged and counted but never changes the classification.
func (s *Service) Analyze(ctx context.Context, review string) domain.Classification {
	result := sentiment.Classify(review)
	s.observer.ObserveAnalysis(result, len(review))

	if err := s.tally.Increment(ctx, result); err != nil {
		s.observer.ObserveTallyError("increment")
		slog.WarnContext(ctx, "Failed to record classification", "sentiment", result, "error", err)
	}

	slog.DebugContext(ctx, "Review analyzed", "sentiment", result, "review_bytes", len(review))
	return result
}

// Stats returns the number of reviews recorded per classification.
func (s *Service) Stats(ctx context.Context) (domain.Tally, error) {
	tally, err := s.tally.Snapshot(ctx)
	if err != nil {
		s.observer.ObserveTallyError("snapshot")
		return domain.Tally{}, fmt.Errorf("failed to read tally: %w", err)
	}
	return tally, nil
}

// ResetStats clears all recorded classifications.
func (s *Service) ResetStats(ctx context.Context) error {
	if err := s.tally.Reset(ctx); err != nil {
		s.observer.ObserveTallyError("reset")
		return fmt.Errorf("failed to reset tally: %w", err)
	}
	slog.InfoContext(ctx, "Tally reset")
	return nil
}
