package expr

import "github.com/pkg/errors"

// Eval evaluates e with args bound positionally to variable indices.
// Extra trailing arguments are ignored.
func Eval[T Float](e Expr[T], args ...T) (T, error) {
	return e.Eval(args...)
}

func checkArity[T Float](e Expr[T], args []T) error {
	if n := Arity(e); len(args) < n {
		return errors.Wrapf(ErrIndexOutOfRange, "expression needs %d arguments, got %d", n, len(args))
	}
	return nil
}

// Eval for Const returns the stored value and ignores args.
func (c *Const[T]) Eval(args ...T) (T, error) {
	return c.val, nil
}

// Eval for Var returns args[index].
func (v *Var[T]) Eval(args ...T) (T, error) {
	if v.index >= len(args) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "%s needs %d arguments, got %d", v, v.index+1, len(args))
	}
	return args[v.index], nil
}

// Eval for Unary checks the arity once, then walks the tree.
func (u *Unary[T]) Eval(args ...T) (T, error) {
	if err := checkArity[T](u, args); err != nil {
		return 0, err
	}
	return evalTree[T](u, args), nil
}

// Eval for Binary checks the arity once, then walks the tree.
func (b *Binary[T]) Eval(args ...T) (T, error) {
	if err := checkArity[T](b, args); err != nil {
		return 0, err
	}
	return evalTree[T](b, args), nil
}

// evalTree assumes len(args) >= Arity(node).
func evalTree[T Float](node Expr[T], args []T) T {
	switch n := node.(type) {
	case *Const[T]:
		return n.val
	case *Var[T]:
		return args[n.index]
	case *Unary[T]:
		return applyUnary(n.op, evalTree(n.child, args))
	case *Binary[T]:
		return applyBinary(n.op, evalTree(n.left, args), evalTree(n.right, args))
	default:
		panic(errors.Errorf("expr: unhandled node %T", node))
	}
}
