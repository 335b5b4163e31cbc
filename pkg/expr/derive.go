package expr

import "github.com/pkg/errors"

// Differentiate returns the partial derivative of node with respect to the
// variable at index. The input is simplified first, every rule is applied
// to simplified operands, and the result is simplified again, which keeps
// repeated differentiation from growing the tree without bound.
// An index the tree does not reference yields 0.
func Differentiate[T Float](node Expr[T], index int) Expr[T] {
	return Simplify(derive(Simplify(node), index))
}

// DifferentiateN applies Differentiate n times. n <= 0 returns a
// simplified copy of node.
func DifferentiateN[T Float](node Expr[T], index, n int) Expr[T] {
	d := Simplify(node)
	for i := 0; i < n; i++ {
		d = Differentiate(d, index)
	}
	return d
}

// Gradient returns one partial derivative per variable index below
// Arity(node).
func Gradient[T Float](node Expr[T]) []Expr[T] {
	s := Simplify(node)
	grad := make([]Expr[T], Arity(s))
	for i := range grad {
		grad[i] = Differentiate(s, i)
	}
	return grad
}

// derive expects a simplified node. Whenever a rule uses an operand more
// than once, later uses are clones so the result stays a tree.
func derive[T Float](node Expr[T], index int) Expr[T] {
	switch n := node.(type) {
	case *Const[T]:
		return num[T](0)

	case *Var[T]:
		if n.index == index {
			return num[T](1)
		}
		return num[T](0)

	case *Binary[T]:
		return deriveBinary(n, index)

	case *Unary[T]:
		return deriveUnary(n, index)

	default:
		panic(errors.Errorf("expr: unhandled node %T", node))
	}
}

func deriveBinary[T Float](n *Binary[T], index int) Expr[T] {
	f, g := n.left, n.right
	df := Simplify(derive(f, index))
	dg := Simplify(derive(g, index))

	switch n.op {
	case OpAdd:
		// (f + g)' = f' + g'
		return Add(df, dg)
	case OpSub:
		// (f - g)' = f' - g'
		return Sub(df, dg)
	case OpMul:
		// (f * g)' = f'*g + f*g'
		return Add(Mul(df, g.Clone()), Mul(f.Clone(), dg))
	case OpDiv:
		// (f / g)' = (f'*g - f*g') / (g*g)
		return Div(
			Sub(Mul(df, g.Clone()), Mul(f.Clone(), dg)),
			Mul(g.Clone(), g.Clone()),
		)
	case OpPow:
		return derivePow(f, g, df, dg)
	default:
		panic(errors.Errorf("expr: unhandled binary op %d", int(n.op)))
	}
}

// derivePow differentiates f^g. A constant or variable-independent
// exponent uses the power rule g * f^(g-1) * f'; a variable-independent
// base uses f^g * ln(f) * g'; the general case is logarithmic
// differentiation f^g * (g'*ln(f) + g*f'/f).
func derivePow[T Float](f, g, df, dg Expr[T]) Expr[T] {
	if isConst(dg, 0) {
		var exponent Expr[T]
		if c, ok := g.(*Const[T]); ok {
			exponent = num(c.val - 1)
		} else {
			exponent = Sub(g.Clone(), num[T](1))
		}
		return Mul(Mul(g.Clone(), Pow(f.Clone(), exponent)), df)
	}
	if isConst(df, 0) {
		return Mul(Mul(Pow(f.Clone(), g.Clone()), Ln(f.Clone())), dg)
	}
	return Mul(
		Pow(f.Clone(), g.Clone()),
		Add(
			Mul(dg, Ln(f.Clone())),
			Div(Mul(g.Clone(), df), f.Clone()),
		),
	)
}

func deriveUnary[T Float](n *Unary[T], index int) Expr[T] {
	f := n.child
	df := Simplify(derive(f, index))

	switch n.op {
	case OpNeg:
		// (-f)' = -f'
		return Neg(df)
	case OpSin:
		// sin(f)' = cos(f) * f'
		return Mul(Cos(f.Clone()), df)
	case OpCos:
		// cos(f)' = -sin(f) * f'
		return Mul(Mul(num[T](-1), Sin(f.Clone())), df)
	case OpTan:
		// tan(f)' = f' / (cos(f) * cos(f))
		return Div(df, Mul(Cos(f.Clone()), Cos(f.Clone())))
	case OpExp:
		// exp(f)' = exp(f) * f'
		return Mul(Exp(f.Clone()), df)
	case OpLn:
		// ln(f)' = f' / f
		return Div(df, f.Clone())
	case OpSqrt:
		// sqrt(f)' = f' / (2 * sqrt(f))
		return Div(df, Mul(num[T](2), Sqrt(f.Clone())))
	case OpCbrt:
		// cbrt(f)' = f' / (3 * cbrt(f) * cbrt(f))
		return Div(df, Mul(num[T](3), Mul(Cbrt(f.Clone()), Cbrt(f.Clone()))))
	case OpSinh:
		// sinh(f)' = f' * cosh(f)
		return Mul(df, Cosh(f.Clone()))
	case OpCosh:
		// cosh(f)' = f' * sinh(f)
		return Mul(df, Sinh(f.Clone()))
	case OpTanh:
		// tanh(f)' = f' / (cosh(f) * cosh(f))
		return Div(df, Mul(Cosh(f.Clone()), Cosh(f.Clone())))
	default:
		panic(errors.Errorf("expr: unhandled unary op %d", int(n.op)))
	}
}

func num[T Float](v T) Expr[T] {
	return &Const[T]{val: v}
}
