package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

type fakeRecorder struct {
	events []model.GenerationEvent
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, e model.GenerationEvent) error {
	f.events = append(f.events, e)
	return f.err
}

func newTestGeneratorService() *GeneratorService {
	scorer := strength.NewScorer(strength.EstimatorFunc(func(string) strength.Estimate {
		return strength.Estimate{Unit: strength.Years, Magnitude: 5}
	}))
	return NewGeneratorService(crypto.NewGenerator(crypto.DefaultBounds()), scorer, crypto.DefaultRequest())
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != crypto.DefaultLength {
		t.Errorf("expected length %d, got %d", crypto.DefaultLength, resp.Length)
	}
	if len(resp.Password) != crypto.DefaultLength {
		t.Errorf("expected password length %d, got %d", crypto.DefaultLength, len(resp.Password))
	}
	if len(resp.Categories) != 4 {
		t.Errorf("expected 4 categories, got %v", resp.Categories)
	}
	if resp.Score != 45 {
		t.Errorf("expected score 45, got %d", resp.Score)
	}
	if resp.CrackTime.Unit != strength.Years {
		t.Errorf("expected crack time unit years, got %s", resp.CrackTime.Unit)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    intPtr(32),
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(3)})
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Fatalf("expected invalid request error, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(200)})
	if !errors.Is(err, crypto.ErrLengthOutOfRange) {
		t.Fatalf("expected ErrLengthOutOfRange, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    intPtr(16),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrNoCategories) {
		t.Fatalf("expected ErrNoCategories, got %v", err)
	}
}

func TestGenerate_RecordsEventWithoutPassword(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestGeneratorService().WithEvents(rec)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(20)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(rec.events))
	}

	e := rec.events[0]
	if e.ID == "" {
		t.Error("expected event id to be set")
	}
	if e.Length != 20 || e.Score != resp.Score || e.CrackUnit != "years" {
		t.Errorf("unexpected event %+v", e)
	}
	if e.Categories != "upper,lower,digit,symbol" {
		t.Errorf("unexpected categories %q", e.Categories)
	}
}

func TestGenerate_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	svc := newTestGeneratorService().WithEvents(rec)

	if _, err := svc.Generate(context.Background(), model.GenerateRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_InvalidRequestIsNotRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestGeneratorService().WithEvents(rec)

	if _, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(500)}); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no events, got %d", len(rec.events))
	}
}

func TestGenerate_ExplicitZeroLength(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(0)})
	if !errors.Is(err, crypto.ErrLengthInsufficient) {
		t.Fatalf("expected ErrLengthInsufficient, got %v", err)
	}
}

func TestScore_EmptyPassword(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Score(model.StrengthRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != 0 {
		t.Errorf("expected score 0, got %d", resp.Score)
	}
}

func TestScore_LengthLimit(t *testing.T) {
	svc := newTestGeneratorService()

	if _, err := svc.Score(model.StrengthRequest{Password: strings.Repeat("aB3@", crypto.MaxLength/4)}); err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}

	_, err := svc.Score(model.StrengthRequest{Password: strings.Repeat("aB3@", 1000)})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Errorf("expected error to match ErrInvalidRequest, got %v", err)
	}
}
