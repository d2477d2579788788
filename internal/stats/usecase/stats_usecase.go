package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	statsdomain "findit-backend/internal/stats/domain"
	"findit-backend/internal/stats/repository"
	"findit-backend/pkg/cache"

	"github.com/sirupsen/logrus"
)

const cacheKey = "stats"

// Cache stores serialized values with a TTL. Get returns cache.ErrMiss for absent keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type StatsUsecase interface {
	GetStats(ctx context.Context) (*statsdomain.Stats, error)
}

type statsUsecase struct {
	repo  repository.StatsRepository
	cache Cache
	ttl   time.Duration
	log   logrus.FieldLogger
}

// NewStatsUsecase creates a stats usecase. c may be nil to always hit the database.
func NewStatsUsecase(repo repository.StatsRepository, c Cache, ttl time.Duration, log logrus.FieldLogger) StatsUsecase {
	return &statsUsecase{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   log.WithField("component", "stats"),
	}
}

func (u *statsUsecase) GetStats(ctx context.Context) (*statsdomain.Stats, error) {
	if cached, ok := u.fromCache(ctx); ok {
		return cached, nil
	}

	stats, err := u.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	u.store(ctx, stats)
	return stats, nil
}

func (u *statsUsecase) fromCache(ctx context.Context) (*statsdomain.Stats, bool) {
	if u.cache == nil {
		return nil, false
	}

	raw, err := u.cache.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			u.log.WithError(err).Warn("stats cache read failed")
		}
		return nil, false
	}

	var stats statsdomain.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		u.log.WithError(err).Warn("discarding corrupt stats cache entry")
		return nil, false
	}
	return &stats, true
}

func (u *statsUsecase) store(ctx context.Context, stats *statsdomain.Stats) {
	if u.cache == nil || u.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, cacheKey, raw, u.ttl); err != nil {
		u.log.WithError(err).Warn("stats cache write failed")
	}
}
