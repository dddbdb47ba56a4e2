package strength

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// Time units used to bucket crack times, matching zxcvbn's display_time.
const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// ZxcvbnEstimator estimates crack time with zxcvbn. Crack times assume an
// offline attack against a slow hash (10k guesses per second).
type ZxcvbnEstimator struct {
	userInputs []string
}

// NewZxcvbnEstimator creates an estimator. userInputs are words that make a
// password weaker when present (user names, site names).
func NewZxcvbnEstimator(userInputs ...string) *ZxcvbnEstimator {
	return &ZxcvbnEstimator{userInputs: userInputs}
}

func (e *ZxcvbnEstimator) EstimateCrackTime(password string) Estimate {
	result := zxcvbn.PasswordStrength(password, e.userInputs)
	return EstimateFromSeconds(result.CrackTime)
}

// EstimateFromSeconds buckets a crack time into the largest unit it reaches.
// Anything below an hour is Unknown.
func EstimateFromSeconds(seconds float64) Estimate {
	switch {
	case math.IsNaN(seconds) || seconds <= 0:
		return Estimate{Unit: Unknown}
	case seconds < hour:
		return Estimate{Unit: Unknown, Magnitude: math.RoundToEven(seconds / minute)}
	case seconds < day:
		return Estimate{Unit: Hours, Magnitude: math.RoundToEven(seconds / hour)}
	case seconds < month:
		return Estimate{Unit: Days, Magnitude: math.RoundToEven(seconds / day)}
	case seconds < year:
		return Estimate{Unit: Months, Magnitude: math.RoundToEven(seconds / month)}
	case seconds < century:
		return Estimate{Unit: Years, Magnitude: math.RoundToEven(seconds / year)}
	default:
		return Estimate{Unit: Centuries}
	}
}
