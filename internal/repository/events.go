package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrEventIDRequired = errors.New("event id is required")

// EventRepository persists generation events.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Record inserts a generation event.
func (r *EventRepository) Record(ctx context.Context, event model.GenerationEvent) error {
	if event.ID == "" {
		return ErrEventIDRequired
	}

	query := `INSERT INTO generation_events (id, categories, pw_length, score, crack_unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Categories,
		event.Length,
		event.Score,
		event.CrackUnit,
		event.CreatedAt.UTC(),
	)
	return err
}

// Summary aggregates all events created at or after since.
func (r *EventRepository) Summary(ctx context.Context, since time.Time) (model.StatsSummary, error) {
	summary := model.StatsSummary{ByCrackUnit: make(map[string]int64)}

	query := `SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(AVG(pw_length), 0)
		FROM generation_events WHERE created_at >= ?`

	err := r.db.QueryRowContext(ctx, query, since.UTC()).Scan(
		&summary.Total, &summary.AverageScore, &summary.AverageLength,
	)
	if err != nil {
		return model.StatsSummary{}, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT crack_unit, COUNT(*)
		FROM generation_events WHERE created_at >= ? GROUP BY crack_unit`, since.UTC())
	if err != nil {
		return model.StatsSummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			unit  string
			count int64
		)
		if err := rows.Scan(&unit, &count); err != nil {
			return model.StatsSummary{}, err
		}
		summary.ByCrackUnit[unit] = count
	}

	return summary, rows.Err()
}
