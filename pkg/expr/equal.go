package expr

// Equal reports whether a and b have the same shape, operators, variable
// indices and constant values. Variable symbols are display-only and are
// ignored. NaN constants compare equal to each other so that every tree is
// equal to itself.
func Equal[T Float](a, b Expr[T]) bool {
	switch x := a.(type) {
	case *Const[T]:
		y, ok := b.(*Const[T])
		return ok && (x.val == y.val || (x.val != x.val && y.val != y.val))
	case *Var[T]:
		y, ok := b.(*Var[T])
		return ok && x.index == y.index
	case *Unary[T]:
		y, ok := b.(*Unary[T])
		return ok && x.op == y.op && Equal(x.child, y.child)
	case *Binary[T]:
		y, ok := b.(*Binary[T])
		return ok && x.op == y.op && Equal(x.left, y.left) && Equal(x.right, y.right)
	default:
		return false
	}
}

func isConst[T Float](e Expr[T], v T) bool {
	c, ok := e.(*Const[T])
	return ok && c.val == v
}
