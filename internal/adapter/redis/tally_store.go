package redis

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pscheid92/reviewpulse/internal/domain"
)

const tallyKey = "reviewpulse:tally"

// TallyStore keeps classification counts in a single Redis hash so every instance
// behind a load balancer reports the same numbers. HINCRBY makes increments atomic.
type TallyStore struct {
	rdb *goredis.Client
	key string
}

func NewTallyStore(rdb *goredis.Client) *TallyStore {
	return &TallyStore{rdb: rdb, key: tallyKey}
}

func (s *TallyStore) Increment(ctx context.Context, c domain.Classification) error {
	if !c.IsValid() {
		return fmt.Errorf("increment tally: %w: %q", domain.ErrInvalidClassification, c)
	}
	if err := s.rdb.HIncrBy(ctx, s.key, c.String(), 1).Err(); err != nil {
		return fmt.Errorf("increment tally: %w", err)
	}
	return nil
}

func (s *TallyStore) Snapshot(ctx context.Context) (domain.Tally, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.Tally{}, fmt.Errorf("read tally: %w", err)
	}

	var tally domain.Tally
	for field, raw := range fields {
		c, err := domain.ParseClassification(field)
		if err != nil {
			// Foreign fields in the hash are ignored.
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Tally{}, fmt.Errorf("read tally field %s: %w", field, err)
		}
		tally = tally.Add(c, n)
	}
	return tally, nil
}

func (s *TallyStore) Reset(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("reset tally: %w", err)
	}
	return nil
}

// Ping is used as a readiness check.
func (s *TallyStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
