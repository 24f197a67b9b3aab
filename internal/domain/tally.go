package domain

import "context"

// Tally counts how many reviews were classified into each bucket.
type Tally struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
	Neutral  int64 `json:"neutral"`
}

func (t Tally) Total() int64 {
	return t.Positive + t.Negative + t.Neutral
}

// Add returns a copy of t with n reviews added under c.
// Unknown classifications leave the tally unchanged.
func (t Tally) Add(c Classification, n int64) Tally {
	switch c {
	case ClassificationPositive:
		t.Positive += n
	case ClassificationNegative:
		t.Negative += n
	case ClassificationNeutral:
		t.Neutral += n
	}
	return t
}

// TallyStore persists classification counts.
// In-memory implementation serves single-instance mode; Redis shares counts across instances.
type TallyStore interface {
	Increment(ctx context.Context, c Classification) error
	Snapshot(ctx context.Context) (Tally, error)
	Reset(ctx context.Context) error
}
