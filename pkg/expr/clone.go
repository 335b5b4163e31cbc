package expr

func (c *Const[T]) Clone() Expr[T] {
	return &Const[T]{val: c.val}
}

func (v *Var[T]) Clone() Expr[T] {
	return &Var[T]{index: v.index, symbol: v.symbol}
}

func (u *Unary[T]) Clone() Expr[T] {
	return &Unary[T]{
		op:    u.op,
		child: u.child.Clone(),
	}
}

func (b *Binary[T]) Clone() Expr[T] {
	return &Binary[T]{
		op:    b.op,
		left:  b.left.Clone(),
		right: b.right.Clone(),
	}
}
