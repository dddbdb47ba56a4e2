// Package strength turns crack-time estimates into a 0-100 display score.
package strength

import "math"

// CrackTimeUnit is the coarse unit a crack-time estimate is expressed in.
type CrackTimeUnit string

const (
	Unknown   CrackTimeUnit = "unknown"
	Hours     CrackTimeUnit = "hours"
	Days      CrackTimeUnit = "days"
	Months    CrackTimeUnit = "months"
	Years     CrackTimeUnit = "years"
	Centuries CrackTimeUnit = "centuries"
)

const (
	// MaxScore is the upper bound of Score.Value.
	MaxScore = 100
	// MaxScoredLength is the number of leading characters passed to the
	// Estimator. A prefix never cracks slower than the whole password, so
	// longer passwords can only be underrated.
	MaxScoredLength = 128
)

// Estimate is how long a password would take to crack, e.g. 3 Days.
type Estimate struct {
	Unit      CrackTimeUnit `json:"unit"`
	Magnitude float64       `json:"magnitude"`
}

// Estimator estimates the time needed to crack a password.
type Estimator interface {
	EstimateCrackTime(password string) Estimate
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(password string) Estimate

func (f EstimatorFunc) EstimateCrackTime(password string) Estimate {
	return f(password)
}

// Score is the display strength of a password.
type Score struct {
	Value    int      `json:"score"`
	Estimate Estimate `json:"crack_time"`
}

// Percent returns Value as a fraction in [0, 1].
func (s Score) Percent() float64 {
	return float64(s.Value) / MaxScore
}

// Scorer scores passwords using an Estimator.
type Scorer struct {
	estimator Estimator
}

// NewScorer creates a Scorer. A nil estimator selects the zxcvbn estimator.
func NewScorer(est Estimator) *Scorer {
	if est == nil {
		est = NewZxcvbnEstimator()
	}
	return &Scorer{estimator: est}
}

// Score rates password. It never fails; an empty password scores 0.
func (s *Scorer) Score(password string) Score {
	if password == "" {
		return Score{Estimate: Estimate{Unit: Unknown}}
	}
	if r := []rune(password); len(r) > MaxScoredLength {
		password = string(r[:MaxScoredLength])
	}
	est := s.estimator.EstimateCrackTime(password)
	return Score{Value: FromEstimate(est), Estimate: est}
}

// FromEstimate maps a crack-time estimate onto [0, 100]. Each unit has its
// own base that grows with the magnitude; centuries saturate at the top.
func FromEstimate(est Estimate) int {
	var base float64
	switch est.Unit {
	case Centuries:
		base = 10
	case Years:
		base = 4 + est.Magnitude/10
	case Months:
		base = 2 + est.Magnitude/12
	case Days:
		base = 0.5 + est.Magnitude/30
	case Hours:
		base = est.Magnitude / 24
	default:
		base = 0
	}

	score := int(math.RoundToEven(base * 10))
	return min(max(score, 0), MaxScore)
}
