package series

import "math"

// MaxDigits is the cap on correct digits (float64 carries ~15 significant digits).
const MaxDigits = 15

// Accuracy compares a partial sum against the exact value of the source
// expression at the same point.
type Accuracy struct {
	Exact         float64
	AbsError      float64
	CorrectDigits float64
}

// CompareExact evaluates the source expression at at with the expanded
// variable replaced by x, and scores the partial sum against it.
func (s *Expansion) CompareExact(result EvalResult, x float64) (Accuracy, error) {
	args := append([]float64(nil), s.At...)
	args[s.Index] = x
	exact, err := s.Source.Eval(args...)
	if err != nil {
		return Accuracy{}, err
	}
	if !result.OK {
		return Accuracy{Exact: exact, AbsError: math.Inf(1)}, nil
	}
	return Accuracy{
		Exact:         exact,
		AbsError:      math.Abs(result.PartialSum - exact),
		CorrectDigits: countCorrectDigits(result.PartialSum, exact),
	}, nil
}

// countCorrectDigits returns the number of matching decimal digits between two values.
func countCorrectDigits(computed, target float64) float64 {
	diff := math.Abs(computed - target)
	if diff == 0 {
		return MaxDigits
	}
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return 0
	}

	absTgt := math.Abs(target)
	if absTgt == 0 {
		// Target is zero, use absolute error
		return math.Max(0, math.Min(-math.Log10(diff), MaxDigits))
	}

	relErr := diff / absTgt
	if relErr == 0 {
		return MaxDigits
	}

	digits := -math.Log10(relErr)
	return math.Max(0, math.Min(digits, MaxDigits))
}
