package expr

import "fmt"

// Constant returns a constant node. Constructors return Expr[T] so that
// composition functions can infer the element type from their operands;
// operands of different element types do not compile.
func Constant[T Float](v T) Expr[T] {
	return &Const[T]{val: v}
}

// Variable returns a variable reading argument index. The optional symbol
// is only used for printing. A negative index panics.
func Variable[T Float](index int, symbol ...string) Expr[T] {
	if index < 0 {
		panic(fmt.Sprintf("expr: negative variable index %d", index))
	}
	v := &Var[T]{index: index}
	if len(symbol) > 0 {
		v.symbol = symbol[0]
	}
	return v
}

// NewBinary builds op(left, right). Nothing is evaluated or simplified.
func NewBinary[T Float](op BinaryOp, left, right Expr[T]) Expr[T] {
	if !op.valid() {
		panic(fmt.Sprintf("expr: unknown binary op %d", int(op)))
	}
	return &Binary[T]{op: op, left: left, right: right}
}

// NewUnary builds op(child).
func NewUnary[T Float](op UnaryOp, child Expr[T]) Expr[T] {
	if !op.valid() {
		panic(fmt.Sprintf("expr: unknown unary op %d", int(op)))
	}
	return &Unary[T]{op: op, child: child}
}

func Add[T Float](a, b Expr[T]) Expr[T] { return NewBinary(OpAdd, a, b) }
func Sub[T Float](a, b Expr[T]) Expr[T] { return NewBinary(OpSub, a, b) }
func Mul[T Float](a, b Expr[T]) Expr[T] { return NewBinary(OpMul, a, b) }
func Div[T Float](a, b Expr[T]) Expr[T] { return NewBinary(OpDiv, a, b) }
func Pow[T Float](a, b Expr[T]) Expr[T] { return NewBinary(OpPow, a, b) }

func Neg[T Float](a Expr[T]) Expr[T]  { return NewUnary(OpNeg, a) }
func Sin[T Float](a Expr[T]) Expr[T]  { return NewUnary(OpSin, a) }
func Cos[T Float](a Expr[T]) Expr[T]  { return NewUnary(OpCos, a) }
func Tan[T Float](a Expr[T]) Expr[T]  { return NewUnary(OpTan, a) }
func Exp[T Float](a Expr[T]) Expr[T]  { return NewUnary(OpExp, a) }
func Ln[T Float](a Expr[T]) Expr[T]   { return NewUnary(OpLn, a) }
func Sqrt[T Float](a Expr[T]) Expr[T] { return NewUnary(OpSqrt, a) }
func Cbrt[T Float](a Expr[T]) Expr[T] { return NewUnary(OpCbrt, a) }
func Sinh[T Float](a Expr[T]) Expr[T] { return NewUnary(OpSinh, a) }
func Cosh[T Float](a Expr[T]) Expr[T] { return NewUnary(OpCosh, a) }
func Tanh[T Float](a Expr[T]) Expr[T] { return NewUnary(OpTanh, a) }
