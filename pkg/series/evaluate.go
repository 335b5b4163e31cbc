package series

import "math"

// EvalResult holds the result of summing an expansion at one point.
type EvalResult struct {
	PartialSum      float64
	TermsComputed   int
	Converged       bool
	ConvergenceRate float64 // average ratio of |S_{2N} - S_N| decrease per doubling
	OK              bool
}

// Evaluate sums the expansion at value x of the expanded variable, using
// checkpoints at powers of 2 for convergence detection.
func (s *Expansion) Evaluate(x float64) EvalResult {
	h := x - s.At[s.Index]

	var sum float64
	var checkpoints []float64
	nextCheckpoint := 1
	power := 1.0

	for k, c := range s.Coeffs {
		if k > 0 {
			power *= h
		}
		sum += c * power
		if math.IsInf(sum, 0) || math.IsNaN(sum) {
			return EvalResult{OK: false}
		}

		// Record checkpoint at powers of 2
		if k+1 == nextCheckpoint {
			checkpoints = append(checkpoints, sum)
			nextCheckpoint *= 2
		}
	}

	converged, rate := analyzeConvergence(checkpoints)
	return EvalResult{
		PartialSum:      sum,
		TermsComputed:   len(s.Coeffs),
		Converged:       converged,
		ConvergenceRate: rate,
		OK:              len(s.Coeffs) > 0,
	}
}

// analyzeConvergence checks if |S_{2N} - S_N| is decreasing by a consistent factor.
func analyzeConvergence(sums []float64) (bool, float64) {
	if len(sums) < 3 {
		return false, 0
	}

	diffs := make([]float64, 0, len(sums)-1)
	for i := 1; i < len(sums); i++ {
		diffs = append(diffs, math.Abs(sums[i]-sums[i-1]))
	}

	var totalRatio float64
	var validRatios int
	converging := true

	for i := 1; i < len(diffs); i++ {
		if diffs[i-1] == 0 {
			// Perfect convergence at this point
			continue
		}
		ratio := diffs[i] / diffs[i-1]
		if ratio >= 1.0 {
			converging = false
		}
		totalRatio += ratio
		validRatios++
	}

	if validRatios == 0 {
		return true, 1.0 // converged exactly
	}

	avgRatio := totalRatio / float64(validRatios)
	return converging && avgRatio < 0.99, avgRatio
}
