package series

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

// ErrNotAnalytic is returned when a derivative is not finite at the
// expansion point.
var ErrNotAnalytic = errors.New("expression is not analytic at the expansion point")

// Expansion is the Taylor expansion of an expression along one variable:
// Sum_{k=0}^{Order} Coeffs[k] * (x_Index - At[Index])^k, every other
// variable held at its value in At.
type Expansion struct {
	Source      expr.Expr[float64]
	Index       int
	At          []float64
	Derivatives []expr.Expr[float64] // k-th derivative trees
	Coeffs      []float64            // f^(k)(At) / k!
}

// Expand differentiates e order times along variable index and evaluates
// every derivative at the point at.
func Expand(e expr.Expr[float64], index int, at []float64, order int) (*Expansion, error) {
	if order < 0 {
		return nil, errors.Errorf("negative order %d", order)
	}
	if index < 0 || index >= len(at) {
		return nil, errors.Wrapf(expr.ErrIndexOutOfRange, "expanding along %d with %d coordinates", index, len(at))
	}

	s := &Expansion{
		Source: e,
		Index:  index,
		At:     append([]float64(nil), at...),
	}

	d := expr.Simplify(e)
	factorial := 1.0
	for k := 0; k <= order; k++ {
		if k > 0 {
			d = expr.Differentiate(d, index)
			factorial *= float64(k)
		}
		v, err := d.Eval(at...)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating derivative %d", k)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNotAnalytic, "derivative %d is %v at %v", k, v, at)
		}
		s.Derivatives = append(s.Derivatives, d)
		s.Coeffs = append(s.Coeffs, v/factorial)
	}
	return s, nil
}

// Order returns the highest power in the expansion.
func (s *Expansion) Order() int {
	return len(s.Coeffs) - 1
}

// Polynomial builds the truncated series as an expression tree in the
// expanded variable.
func (s *Expansion) Polynomial() expr.Expr[float64] {
	v := expr.Variable[float64](s.Index, symbolOf(s.Source, s.Index))
	shift := expr.Sub(v, expr.Constant(s.At[s.Index]))

	var poly expr.Expr[float64] = expr.Constant(0.0)
	for k, c := range s.Coeffs {
		term := expr.Mul(expr.Constant(c), expr.Pow(shift.Clone(), expr.Constant(float64(k))))
		poly = expr.Add(poly, term)
	}
	return expr.Simplify(poly)
}

// String returns a human-readable representation.
func (s *Expansion) String() string {
	return fmt.Sprintf("Taylor[%s, order %d, at %v] %s",
		expr.Variable[float64](s.Index, symbolOf(s.Source, s.Index)), s.Order(), s.At, s.Polynomial())
}

// LaTeX returns a LaTeX representation of the truncated polynomial.
func (s *Expansion) LaTeX() string {
	return s.Polynomial().LaTeX()
}

// NodeCount returns the total node count of all derivative trees.
func (s *Expansion) NodeCount() int {
	n := 0
	for _, d := range s.Derivatives {
		n += d.NodeCount()
	}
	return n
}

// symbolOf finds the display symbol of variable index in e.
func symbolOf(e expr.Expr[float64], index int) string {
	switch n := e.(type) {
	case *expr.Var[float64]:
		if n.Index() == index {
			return n.Symbol()
		}
	case *expr.Unary[float64]:
		return symbolOf(n.Child(), index)
	case *expr.Binary[float64]:
		if s := symbolOf(n.Left(), index); s != "" {
			return s
		}
		return symbolOf(n.Right(), index)
	}
	return ""
}
