package dist

import (
	"fmt"
	"math"
)

// Attempts samples the number of independent trials up to and including the
// first success, each succeeding with probability p (geometric distribution
// on {1, 2, ...}).
//
// Uses the closed form ceil(ln(U) / ln(1-p)). P(1) = p, and the result is
// always >= 1.
func Attempts(p float64, src Source) (int, error) {
	if !(p > 0 && p <= 1) {
		return 0, fmt.Errorf("%w: success probability must be in (0, 1], got %v", ErrInvalidParameter, p)
	}
	if p == 1 {
		return 1, nil
	}
	n := math.Ceil(math.Log(openUniform(src)) / math.Log1p(-p))
	if n < 1 {
		// U within one ulp of 1 rounds ln(U) to zero.
		return 1, nil
	}
	if n > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(n), nil
}
