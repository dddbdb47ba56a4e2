package model

import "time"

// GenerationEvent records that a password was generated. The password itself
// is never stored.
type GenerationEvent struct {
	ID         string
	Categories string
	Length     int
	Score      int
	CrackUnit  string
	CreatedAt  time.Time
}

// StatsSummary aggregates generation events.
type StatsSummary struct {
	Total         int64            `json:"total"`
	AverageScore  float64          `json:"average_score"`
	AverageLength float64          `json:"average_length"`
	ByCrackUnit   map[string]int64 `json:"by_crack_unit"`
}
