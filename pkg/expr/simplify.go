package expr

// Simplify rewrites a tree bottom-up: children first, then constant
// folding, then the identity rules of the node's operator in order (first
// match wins). The input is never modified and the result shares no nodes
// with it. Simplify is idempotent.
//
// x/x folds to 1 even when x evaluates to 0, so a symbolic 0/0 becomes 1.
func Simplify[T Float](node Expr[T]) Expr[T] {
	switch n := node.(type) {
	case *Const[T], *Var[T]:
		return node.Clone()

	case *Unary[T]:
		child := Simplify(n.child)

		// Fold f(k), including -(k)
		if c, ok := child.(*Const[T]); ok {
			return &Const[T]{val: applyUnary(n.op, c.val)}
		}

		return &Unary[T]{op: n.op, child: child}

	case *Binary[T]:
		left := Simplify(n.left)
		right := Simplify(n.right)

		lc, lok := left.(*Const[T])
		rc, rok := right.(*Const[T])
		if lok && rok {
			return &Const[T]{val: applyBinary(n.op, lc.val, rc.val)}
		}

		if r, ok := simplifyBinary(n.op, left, right); ok {
			return r
		}
		return &Binary[T]{op: n.op, left: left, right: right}

	default:
		return node
	}
}

// simplifyBinary applies the identity rules for op to already simplified
// operands, at most one of which is a constant.
func simplifyBinary[T Float](op BinaryOp, left, right Expr[T]) (Expr[T], bool) {
	switch op {
	case OpAdd:
		// 0 + y = y
		if isConst(left, 0) {
			return right, true
		}
		// x + 0 = x
		if isConst(right, 0) {
			return left, true
		}
		// x + x = 2 * x
		if Equal(left, right) {
			return &Binary[T]{op: OpMul, left: &Const[T]{val: 2}, right: left}, true
		}

	case OpSub:
		// x - 0 = x
		if isConst(right, 0) {
			return left, true
		}
		// x - x = 0
		if Equal(left, right) {
			return &Const[T]{val: 0}, true
		}
		// 0 - y = -y
		if isConst(left, 0) {
			return &Unary[T]{op: OpNeg, child: right}, true
		}

	case OpMul:
		// x * 0 = 0 * y = 0
		if isConst(left, 0) || isConst(right, 0) {
			return &Const[T]{val: 0}, true
		}
		// 1 * y = y
		if isConst(left, 1) {
			return right, true
		}
		// x * 1 = x
		if isConst(right, 1) {
			return left, true
		}

	case OpDiv:
		// 0 / y = 0
		if isConst(left, 0) {
			return &Const[T]{val: 0}, true
		}
		// x / 1 = x
		if isConst(right, 1) {
			return left, true
		}
		// x / x = 1
		if Equal(left, right) {
			return &Const[T]{val: 1}, true
		}

	case OpPow:
		// x^1 = x
		if isConst(right, 1) {
			return left, true
		}
		// x^0 = 1
		if isConst(right, 0) {
			return &Const[T]{val: 1}, true
		}
	}
	return nil, false
}
