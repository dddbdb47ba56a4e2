package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	MinLength     = 5
	MaxLength     = 128
	DefaultLength = 15
)

var (
	ErrInvalidRequest     = errors.New("invalid password request")
	ErrNoCategories       = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidRequest)
	ErrLengthInsufficient = fmt.Errorf("%w: password length must be at least equal to the number of selected character types", ErrInvalidRequest)
	ErrLengthOutOfRange   = fmt.Errorf("%w: password length out of range", ErrInvalidRequest)
)

// Bounds is the inclusive range of accepted password lengths.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds returns the 5-128 range.
func DefaultBounds() Bounds {
	return Bounds{Min: MinLength, Max: MaxLength}
}

// Contains reports whether n lies within b.
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Request asks for a password of Length characters drawn from Categories.
type Request struct {
	Categories CategorySet
	Length     int
}

// DefaultRequest returns 15 characters with all types enabled.
func DefaultRequest() Request {
	return Request{Categories: AllCategories, Length: DefaultLength}
}

// Password is a generated password.
type Password string

func (p Password) String() string {
	return string(p)
}

// Len returns the number of characters in p.
func (p Password) Len() int {
	return len([]rune(p))
}

// Generator produces passwords. The zero value uses DefaultBounds and
// crypto/rand. A Generator is immutable and safe for concurrent use as long
// as Rand is.
type Generator struct {
	Bounds Bounds
	// Rand must be a cryptographically secure source.
	Rand io.Reader
}

// NewGenerator returns a Generator accepting lengths within bounds.
func NewGenerator(bounds Bounds) *Generator {
	return &Generator{Bounds: bounds, Rand: rand.Reader}
}

var defaultGenerator = NewGenerator(DefaultBounds())

// Generate creates a password with the default generator.
func Generate(req Request) (Password, error) {
	return defaultGenerator.Generate(req)
}

// Validate checks req against the generator's bounds.
func (g *Generator) Validate(req Request) error {
	n := req.Categories.Len()
	if n == 0 {
		return ErrNoCategories
	}
	if req.Length < n {
		return ErrLengthInsufficient
	}
	bounds := g.Limits()
	if !bounds.Contains(req.Length) {
		return fmt.Errorf("%w: got %d, want %d-%d", ErrLengthOutOfRange, req.Length, bounds.Min, bounds.Max)
	}
	return nil
}

// Generate creates a password containing at least one character from each
// requested category.
func (g *Generator) Generate(req Request) (Password, error) {
	if err := g.Validate(req); err != nil {
		return "", err
	}

	src := g.Rand
	if src == nil {
		src = rand.Reader
	}

	required := req.Categories.Categories()
	pool := req.Categories.Chars()
	result := make([]byte, req.Length)

	// Guarantee at least one character from each selected type.
	for i, c := range required {
		ch, err := randChar(src, c.Chars())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(required); i < req.Length; i++ {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return Password(result), nil
}

// Limits returns the accepted length range. A zero Bounds means DefaultBounds.
func (g *Generator) Limits() Bounds {
	if g.Bounds == (Bounds{}) {
		return DefaultBounds()
	}
	return g.Bounds
}

// randChar picks a random character from charset.
func randChar(src io.Reader, charset string) (byte, error) {
	n, err := randIntn(src, len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src io.Reader, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIntn(src, i+1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// randIntn returns a uniform int in [0, n).
func randIntn(src io.Reader, n int) (int, error) {
	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
