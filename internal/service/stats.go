package service

import (
	"context"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrInvalidWindow = errors.New("stats window must not be negative")

// StatsReader aggregates stored generation events.
type StatsReader interface {
	Summary(ctx context.Context, since time.Time) (model.StatsSummary, error)
}

// StatsService reports on recorded generations.
type StatsService struct {
	reader StatsReader
	now    func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader, now: time.Now}
}

// Summary aggregates events from the last window. A zero window covers all events.
func (s *StatsService) Summary(ctx context.Context, window time.Duration) (model.StatsSummary, error) {
	if window < 0 {
		return model.StatsSummary{}, ErrInvalidWindow
	}

	var since time.Time
	if window > 0 {
		since = s.now().Add(-window)
	}
	return s.reader.Summary(ctx, since)
}
