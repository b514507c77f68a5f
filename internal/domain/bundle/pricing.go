package bundle

import (
	"errors"
	"fmt"
)

// ErrUndefinedDefaultRate is returned when the pooled average default rate
// is 1 (every member certain to default); the rate formula has no value
// there and must not leak Inf or NaN.
var ErrUndefinedDefaultRate = errors.New("undefined default rate")

// ComputeInterestRate derives a single rate for a pool of loans from their
// default rates and a caller-supplied risk margin m:
//
//	rate = ((1 + m) / (1 - avg)) - 1
//
// Pure function of its inputs; callers recompute rather than cache.
func ComputeInterestRate(defaultRates []float64, m float64) (float64, error) {
	if len(defaultRates) == 0 {
		return 0, ErrEmptyLoanSet
	}
	if m <= 0 {
		return 0, ErrInvalidMargin
	}
	var sum float64
	for i, r := range defaultRates {
		if r < 0 || r > 1 {
			return 0, fmt.Errorf("default rate %v at index %d outside [0,1]", r, i)
		}
		sum += r
	}
	avg := sum / float64(len(defaultRates))
	if avg >= 1 {
		return 0, ErrUndefinedDefaultRate
	}
	return ((1+m)/(1-avg) - 1), nil
}
