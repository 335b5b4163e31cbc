package series

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

func TestExpand_Exp(t *testing.T) {
	x := expr.Variable[float64](0, "x")
	s, err := Expand(expr.Exp(x), 0, []float64{0}, 20)
	require.NoError(t, err)
	require.Equal(t, 20, s.Order())

	fact := 1.0
	for k, c := range s.Coeffs {
		if k > 0 {
			fact *= float64(k)
		}
		assert.InDelta(t, 1/fact, c, 1e-15, "coefficient %d", k)
	}

	result := s.Evaluate(1)
	require.True(t, result.OK)
	assert.InDelta(t, math.E, result.PartialSum, 1e-14)
	assert.True(t, result.Converged)

	acc, err := s.CompareExact(result, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.E, acc.Exact, 1e-15)
	assert.GreaterOrEqual(t, acc.CorrectDigits, 13.0)
}

func TestExpand_SinPolynomial(t *testing.T) {
	x := expr.Variable[float64](0, "x")
	s, err := Expand(expr.Sin(x), 0, []float64{0}, 3)
	require.NoError(t, err)

	// sin(x) ~ x - x^3/6
	assert.Equal(t, []float64{0, 1, 0, -1.0 / 6.0}, s.Coeffs)
	poly := s.Polynomial()
	v, err := poly.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5-0.125/6, v, 1e-15)
	assert.Contains(t, s.String(), "order 3")
	assert.NotEmpty(t, s.LaTeX())
}

func TestExpand_ShiftedPoint(t *testing.T) {
	x, y := expr.Variable[float64](0, "x"), expr.Variable[float64](1, "y")
	// ln(x) * y around x = 1 with y held at 2
	f := expr.Mul(expr.Ln(x), y)
	s, err := Expand(f, 0, []float64{1, 2}, 8)
	require.NoError(t, err)

	result := s.Evaluate(1.2)
	require.True(t, result.OK)
	acc, err := s.CompareExact(result, 1.2)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Log(1.2), acc.Exact, 1e-15)
	assert.Less(t, acc.AbsError, 1e-6)

	// the polynomial tree agrees with the summed coefficients
	pv, err := s.Polynomial().Eval(1.2, 2)
	require.NoError(t, err)
	assert.InDelta(t, result.PartialSum, pv, 1e-12)
}

func TestExpand_Errors(t *testing.T) {
	x := expr.Variable[float64](0, "x")

	_, err := Expand(x, 0, []float64{0}, -1)
	assert.Error(t, err)

	_, err = Expand(x, 1, []float64{0}, 2)
	assert.True(t, errors.Is(err, expr.ErrIndexOutOfRange))

	_, err = Expand(expr.Ln(x), 0, []float64{0}, 2)
	assert.True(t, errors.Is(err, ErrNotAnalytic))
}

func TestExpand_PolynomialIsExact(t *testing.T) {
	x := expr.Variable[float64](0, "x")
	cubic := expr.Sub(expr.Pow(x, expr.Constant(3.0)), expr.Mul(expr.Constant(2.0), x))
	s, err := Expand(cubic, 0, []float64{1}, 6)
	require.NoError(t, err)

	// derivatives past the degree vanish
	assert.Equal(t, "0", s.Derivatives[4].String())
	assert.Equal(t, 0.0, s.Coeffs[5])

	result := s.Evaluate(3)
	acc, err := s.CompareExact(result, 3)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, acc.Exact, 1e-12)
	assert.InDelta(t, 0, acc.AbsError, 1e-12)
}

func TestAnalyzeConvergence(t *testing.T) {
	ok, rate := analyzeConvergence([]float64{1, 1.5, 1.75, 1.875})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, rate, 1e-12)

	ok, _ = analyzeConvergence([]float64{1, 2, 4, 8})
	assert.False(t, ok)

	ok, _ = analyzeConvergence([]float64{1, 2})
	assert.False(t, ok)
}

func TestCountCorrectDigits(t *testing.T) {
	assert.Equal(t, float64(MaxDigits), countCorrectDigits(2, 2))
	assert.InDelta(t, 3, countCorrectDigits(1.001, 1), 1e-9)
	assert.Equal(t, 0.0, countCorrectDigits(math.NaN(), 1))
}
