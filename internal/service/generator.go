package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

var ErrPasswordTooLong = fmt.Errorf("%w: password too long to score", crypto.ErrInvalidRequest)

// RequestSource is implemented by presentation layers that collect the
// user's choice of categories and length.
type RequestSource interface {
	Request(defaults crypto.Request) crypto.Request
}

// EventRecorder stores generation metadata.
type EventRecorder interface {
	Record(ctx context.Context, event model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	scorer    *strength.Scorer
	defaults  crypto.Request
	events    EventRecorder
	now       func() time.Time
}

// NewGeneratorService creates a new GeneratorService. defaults fill in
// whatever a RequestSource leaves unset.
func NewGeneratorService(gen *crypto.Generator, scorer *strength.Scorer, defaults crypto.Request) *GeneratorService {
	return &GeneratorService{
		generator: gen,
		scorer:    scorer,
		defaults:  defaults,
		now:       time.Now,
	}
}

// WithEvents makes the service record every successful generation.
func (s *GeneratorService) WithEvents(rec EventRecorder) *GeneratorService {
	s.events = rec
	return s
}

// MaxPasswordLength is the longest password Score accepts, the same as the
// longest one Generate produces.
func (s *GeneratorService) MaxPasswordLength() int {
	return s.generator.Limits().Max
}

// Generate produces and scores a password for the request held by src.
func (s *GeneratorService) Generate(ctx context.Context, src RequestSource) (model.GenerateResponse, error) {
	req := src.Request(s.defaults)

	password, err := s.generator.Generate(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	score := s.scorer.Score(password.String())
	s.record(ctx, req, score)

	return model.GenerateResponse{
		Password:   password.String(),
		Length:     password.Len(),
		Categories: req.Categories.Names(),
		Score:      score.Value,
		CrackTime:  score.Estimate,
	}, nil
}

// Score rates an existing password.
func (s *GeneratorService) Score(req model.StrengthRequest) (model.StrengthResponse, error) {
	if n, limit := utf8.RuneCountInString(req.Password), s.MaxPasswordLength(); n > limit {
		return model.StrengthResponse{}, fmt.Errorf("%w: got %d characters, max %d", ErrPasswordTooLong, n, limit)
	}

	score := s.scorer.Score(req.Password)
	return model.StrengthResponse{
		Score:     score.Value,
		CrackTime: score.Estimate,
	}, nil
}

func (s *GeneratorService) record(ctx context.Context, req crypto.Request, score strength.Score) {
	if s.events == nil {
		return
	}

	event := model.GenerationEvent{
		ID:         uuid.NewString(),
		Categories: req.Categories.String(),
		Length:     req.Length,
		Score:      score.Value,
		CrackUnit:  string(score.Estimate.Unit),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.events.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "error", err, "event_id", event.ID)
	}
}
