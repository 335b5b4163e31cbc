package expr

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xy() (Expr[float64], Expr[float64]) {
	return Variable[float64](0, "x"), Variable[float64](1, "y")
}

func assertEval(t *testing.T, node Expr[float64], expected float64, args ...float64) {
	t.Helper()
	got, err := node.Eval(args...)
	require.NoError(t, err, "Eval(%s)", node)
	assert.InDelta(t, expected, got, 1e-9, "Eval(%s) at %v", node, args)
}

func TestConstant(t *testing.T) {
	c := Constant(7.0)
	assertEval(t, c, 7)
	assertEval(t, c, 7, 99, 100)
	assert.Equal(t, "7", c.String())
	assert.Equal(t, 1, c.NodeCount())
	assert.Equal(t, 0, Arity(c))
}

func TestVariable(t *testing.T) {
	x, y := xy()
	assertEval(t, x, 2, 2, 3)
	assertEval(t, y, 3, 2, 3)
	assert.Equal(t, "x", x.String())
	assert.Equal(t, "Var<3>", Variable[float64](3).String())
	assert.Equal(t, 2, Arity(y))

	assert.Panics(t, func() { Variable[float64](-1) })
}

func TestBinaryOps(t *testing.T) {
	x, y := xy()
	tests := []struct {
		name string
		node Expr[float64]
		want []float64 // f(2,3), f(3,-1)
	}{
		{"add", Add(x, y), []float64{5, 2}},
		{"sub", Sub(x, y), []float64{-1, 4}},
		{"mul", Mul(x, y), []float64{6, -3}},
		{"div", Div(x, y), []float64{2.0 / 3.0, -3}},
		{"pow", Pow(x, y), []float64{8, 1.0 / 3.0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertEval(t, tc.node, tc.want[0], 2, 3)
			assertEval(t, tc.node, tc.want[1], 3, -1)
		})
	}
}

func TestExtraArgumentsIgnored(t *testing.T) {
	x, y := xy()
	f := Add(x, y)
	assertEval(t, f, 1, 0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55)
}

func TestUnaryOps(t *testing.T) {
	x := Variable[float64](0, "x")
	tests := []struct {
		op   UnaryOp
		at   float64
		want float64
	}{
		{OpNeg, 2, -2},
		{OpSin, math.Pi / 2, 1},
		{OpCos, 0, 1},
		{OpTan, math.Pi / 4, 1},
		{OpExp, 0, 1},
		{OpLn, math.E, 1},
		{OpSqrt, 16, 4},
		{OpCbrt, 8, 2},
		{OpSinh, 0, 0},
		{OpCosh, 0, 1},
		{OpTanh, 0, 0},
	}
	require.Len(t, tests, len(UnaryOps()))
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			assertEval(t, NewUnary(tc.op, x), tc.want, tc.at)
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	x, y := xy()
	got, err := Div(x, y).Eval(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = Div(x, y).Eval(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = Ln(x).Eval(-1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestEvalIndexOutOfRange(t *testing.T) {
	x, y := xy()
	f := Add(x, Sin(y))

	_, err := f.Eval(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = y.Eval()
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = Eval(Constant(1.0))
	assert.NoError(t, err)
}

func TestEvalIsPure(t *testing.T) {
	x, y := xy()
	f := Div(Sin(Mul(Exp(x), y)), Add(x, Constant(1.0)))
	a, err := f.Eval(0.3, 1.7)
	require.NoError(t, err)
	b, err := f.Eval(0.3, 1.7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFloat32Tree(t *testing.T) {
	x := Variable[float32](0, "x")
	f := Mul(x, Constant[float32](0.5))
	got, err := f.Eval(3)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), got)
	assert.Equal(t, "0.1", Constant[float32](0.1).String())
	assert.Equal(t, "float32", DType[float32]())
	assert.Equal(t, "float64", DType[float64]())
}

func TestString(t *testing.T) {
	x, y := xy()
	tests := []struct {
		node Expr[float64]
		want string
	}{
		{Add(x, y), "(x+y)"},
		{Pow(Constant(2.0), x), "(2^x)"},
		{Sin(x), "(Sin(x))"},
		{Sin(Add(x, y)), "(Sin(x+y))"},
		{Exp(Sin(x)), "(Exp(Sin(x)))"},
		{Neg(x), "-(x)"},
		{Div(Constant(1.0), Sin(Mul(Exp(x), y))), "(1/(Sin((Exp(x))*y)))"},
		{Mul(Constant(0.25), Variable[float64](2)), "(0.25*Var<2>)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.node.String())
		assert.Equal(t, tc.want, ToString(tc.node))
	}
}

func TestLaTeX(t *testing.T) {
	x, y := xy()
	tests := []struct {
		name string
		node Expr[float64]
		want string
	}{
		{"frac", Div(x, Sqrt(y)), `\frac{x}{\sqrt{y}}`},
		{"function arg", Sin(Mul(x, Constant(2.0))), `\sin{(x \cdot 2)}`},
		{"unnamed var", Pow(Variable[float64](0), Constant(3.0)), `{x_{0}}^{3}`},
		{"sum times", Mul(Add(x, y), x), `\left(x + y\right) \cdot x`},
		{"minus sum", Sub(x, Add(y, x)), `x - \left(y + x\right)`},
		{"sum minus product", Sub(Add(x, y), Mul(x, y)), `x + y - x \cdot y`},
		{"negated sum", Neg(Add(x, y)), `-\left(x + y\right)`},
		{"negated product", Neg(Mul(x, y)), `-x \cdot y`},
		{"double negation", Neg(Neg(x)), `-\left(-x\right)`},
		{"times negation", Mul(x, Neg(y)), `x \cdot \left(-y\right)`},
		{"negative constant", Mul(Constant(-2.0), x), `\left(-2\right) \cdot x`},
		{"compound base", Pow(Add(x, y), Constant(2.0)), `{\left(x + y\right)}^{2}`},
		{"function base", Pow(Sin(x), Constant(2.0)), `{\left(\sin{(x)}\right)}^{2}`},
		{"sum exponent", Pow(x, Add(y, Constant(1.0))), `{x}^{y + 1}`},
		{"frac terms", Div(Add(x, y), Sub(x, y)), `\frac{x + y}{x - y}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.LaTeX())
		})
	}

	// derivative of (x+y)*sin(x) keeps the grouping of its product term
	d := Differentiate(Mul(Add(x, y), Sin(x)), 0)
	require.Equal(t, "((Sin(x))+((x+y)*(Cos(x))))", d.String())
	assert.Equal(t, `\sin{(x)} + \left(x + y\right) \cdot \cos{(x)}`, d.LaTeX())
}

func TestClone(t *testing.T) {
	x, y := xy()
	original := Add(x, Sin(Mul(y, Constant(3.0))))
	cloned := original.Clone()
	assert.True(t, Equal(original, cloned))
	assert.Equal(t, original.String(), cloned.String())

	ob := original.(*Binary[float64])
	cb := cloned.(*Binary[float64])
	assert.NotSame(t, ob, cb)
	assert.NotSame(t, ob.Right(), cb.Right())
}

func TestComplexity(t *testing.T) {
	x, y := xy()
	tree := Add(x, Mul(Constant(2.0), y))
	assert.Equal(t, 5, tree.NodeCount())
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, 2, Arity(tree))
	assert.True(t, DependsOn(tree, 1))
	assert.False(t, DependsOn(tree, 2))
	assert.InDelta(t, 5.5, WeightedComplexity(tree), 1e-12)
}

func TestEqual(t *testing.T) {
	x, y := xy()
	assert.True(t, Equal(Add(x, y), Add(Variable[float64](0), Variable[float64](1))))
	assert.False(t, Equal(Add(x, y), Add(y, x)))
	assert.False(t, Equal(Add(x, y), Sub(x, y)))
	assert.False(t, Equal(Sin(x), Cos(x)))
	assert.True(t, Equal(Constant(math.NaN()), Constant(math.NaN())))
	assert.False(t, Equal(x, Constant(0.0)))
}

func TestOpTables(t *testing.T) {
	x, y := xy()
	for _, op := range UnaryOps() {
		n := NewUnary(op, x)
		assert.NotEmpty(t, n.String(), op)
		assert.NotEmpty(t, n.LaTeX(), op)
		assert.NotPanics(t, func() { Differentiate(n, 0) }, op)
		_, ok := unaryByTag(unaryOps[op].tag)
		assert.True(t, ok, op)
	}
	for _, op := range BinaryOps() {
		n := NewBinary(op, x, y)
		assert.NotEmpty(t, n.String(), op)
		assert.NotEmpty(t, n.LaTeX(), op)
		assert.NotPanics(t, func() { Differentiate(n, 0) }, op)
		_, ok := binaryByTag(binaryOps[op].tag)
		assert.True(t, ok, op)
	}
	assert.Panics(t, func() { NewUnary(numUnaryOps, x) })
	assert.Panics(t, func() { NewBinary(BinaryOp(-1), x, y) })
}
