package model

import (
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/strength"
)

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and an
// explicit value such as false or 0.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// Request resolves the body against defaults. Omitted fields take the
// default value.
func (r GenerateRequest) Request(defaults crypto.Request) crypto.Request {
	req := crypto.Request{Length: defaults.Length}
	if r.Length != nil {
		req.Length = *r.Length
	}

	toggles := []struct {
		cat crypto.Category
		p   *bool
	}{
		{crypto.Uppercase, r.Uppercase},
		{crypto.Lowercase, r.Lowercase},
		{crypto.Digit, r.Numbers},
		{crypto.Symbol, r.Symbols},
	}
	for _, t := range toggles {
		if boolOrDefault(t.p, defaults.Categories.Has(t.cat)) {
			req.Categories = req.Categories.With(t.cat)
		}
	}
	return req
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password   string            `json:"password"`
	Length     int               `json:"length"`
	Categories []string          `json:"categories"`
	Score      int               `json:"score"`
	CrackTime  strength.Estimate `json:"crack_time"`
}

// StrengthRequest asks for the score of an existing password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the score of a password.
type StrengthResponse struct {
	Score     int               `json:"score"`
	CrackTime strength.Estimate `json:"crack_time"`
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
