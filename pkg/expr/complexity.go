package expr

import "math"

func (c *Const[T]) NodeCount() int  { return 1 }
func (v *Var[T]) NodeCount() int    { return 1 }
func (u *Unary[T]) NodeCount() int  { return 1 + u.child.NodeCount() }
func (b *Binary[T]) NodeCount() int { return 1 + b.left.NodeCount() + b.right.NodeCount() }

func (c *Const[T]) Depth() int { return 1 }
func (v *Var[T]) Depth() int   { return 1 }
func (u *Unary[T]) Depth() int { return 1 + u.child.Depth() }
func (b *Binary[T]) Depth() int {
	ld := b.left.Depth()
	rd := b.right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// Arity returns the highest variable index in the tree plus one, i.e. the
// minimum number of arguments Eval needs. Closed trees have arity 0.
func Arity[T Float](node Expr[T]) int {
	switch n := node.(type) {
	case *Var[T]:
		return n.index + 1
	case *Unary[T]:
		return Arity(n.child)
	case *Binary[T]:
		return max(Arity(n.left), Arity(n.right))
	default:
		return 0
	}
}

// DependsOn reports whether the tree references variable index.
func DependsOn[T Float](node Expr[T], index int) bool {
	switch n := node.(type) {
	case *Var[T]:
		return n.index == index
	case *Unary[T]:
		return DependsOn(n.child, index)
	case *Binary[T]:
		return DependsOn(n.left, index) || DependsOn(n.right, index)
	default:
		return false
	}
}

// WeightedComplexity returns a complexity score with heavier weight for
// operations that are more expensive to evaluate.
func WeightedComplexity[T Float](node Expr[T]) float64 {
	switch n := node.(type) {
	case *Var[T]:
		return 1.0
	case *Const[T]:
		v := math.Abs(float64(n.val))
		if v <= 10 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 1.0
		}
		return 1.0 + math.Log10(v)
	case *Unary[T]:
		return unaryWeight(n.op) + WeightedComplexity(n.child)
	case *Binary[T]:
		return binaryWeight(n.op) + WeightedComplexity(n.left) + WeightedComplexity(n.right)
	default:
		return 1.0
	}
}

func unaryWeight(op UnaryOp) float64 {
	switch op {
	case OpNeg:
		return 1.0
	case OpSqrt, OpCbrt:
		return 2.0
	case OpSin, OpCos, OpTan, OpExp, OpLn:
		return 3.0
	case OpSinh, OpCosh, OpTanh:
		return 3.0
	default:
		return 2.0
	}
}

func binaryWeight(op BinaryOp) float64 {
	switch op {
	case OpAdd, OpSub:
		return 1.0
	case OpMul, OpDiv:
		return 1.5
	case OpPow:
		return 2.0
	default:
		return 1.5
	}
}
