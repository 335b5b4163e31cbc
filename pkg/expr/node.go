package expr

import (
	"math"
	"reflect"
)

// Float is the set of element types an expression tree can carry.
// Every node of one tree shares the same element type.
type Float interface {
	~float32 | ~float64
}

// Expr is the interface for all expression tree nodes. The set of
// implementations is closed: *Const, *Var, *Binary and *Unary.
type Expr[T Float] interface {
	Eval(args ...T) (T, error)
	String() string
	LaTeX() string
	Clone() Expr[T]
	NodeCount() int
	Depth() int
	isExpr()
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpSin
	OpCos
	OpTan
	OpExp
	OpLn
	OpSqrt
	OpCbrt
	OpSinh
	OpCosh
	OpTanh

	numUnaryOps
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow

	numBinaryOps
)

// unaryInfo describes one unary function: its printed name, its JSON tag
// and the numeric primitive it applies.
type unaryInfo struct {
	name  string
	tag   string
	apply func(float64) float64
}

// binaryInfo describes one binary operator.
type binaryInfo struct {
	symbol string
	tag    string
	apply  func(a, b float64) float64
}

var unaryOps = [numUnaryOps]unaryInfo{
	OpNeg:  {name: "-", tag: "neg", apply: func(x float64) float64 { return -x }},
	OpSin:  {name: "Sin", tag: "sin", apply: math.Sin},
	OpCos:  {name: "Cos", tag: "cos", apply: math.Cos},
	OpTan:  {name: "Tan", tag: "tan", apply: math.Tan},
	OpExp:  {name: "Exp", tag: "exp", apply: math.Exp},
	OpLn:   {name: "Ln", tag: "ln", apply: math.Log},
	OpSqrt: {name: "Sqrt", tag: "sqrt", apply: math.Sqrt},
	OpCbrt: {name: "Cbrt", tag: "cbrt", apply: math.Cbrt},
	OpSinh: {name: "Sinh", tag: "sinh", apply: math.Sinh},
	OpCosh: {name: "Cosh", tag: "cosh", apply: math.Cosh},
	OpTanh: {name: "Tanh", tag: "tanh", apply: math.Tanh},
}

var binaryOps = [numBinaryOps]binaryInfo{
	OpAdd: {symbol: "+", tag: "add", apply: func(a, b float64) float64 { return a + b }},
	OpSub: {symbol: "-", tag: "sub", apply: func(a, b float64) float64 { return a - b }},
	OpMul: {symbol: "*", tag: "mul", apply: func(a, b float64) float64 { return a * b }},
	OpDiv: {symbol: "/", tag: "div", apply: func(a, b float64) float64 { return a / b }},
	OpPow: {symbol: "^", tag: "pow", apply: math.Pow},
}

// UnaryOps returns every unary operation in declaration order.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, 0, numUnaryOps)
	for op := UnaryOp(0); op < numUnaryOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

// BinaryOps returns every binary operation in declaration order.
func BinaryOps() []BinaryOp {
	ops := make([]BinaryOp, 0, numBinaryOps)
	for op := BinaryOp(0); op < numBinaryOps; op++ {
		ops = append(ops, op)
	}
	return ops
}

func (op UnaryOp) valid() bool  { return op >= 0 && op < numUnaryOps }
func (op BinaryOp) valid() bool { return op >= 0 && op < numBinaryOps }

// String returns the printed function name.
func (op UnaryOp) String() string {
	if !op.valid() {
		return "UnaryOp(?)"
	}
	return unaryOps[op].name
}

// String returns the infix operator symbol.
func (op BinaryOp) String() string {
	if !op.valid() {
		return "BinaryOp(?)"
	}
	return binaryOps[op].symbol
}

// applyUnary runs the numeric primitive for op. Computation happens in
// float64; for float32 trees the result is rounded back to T.
func applyUnary[T Float](op UnaryOp, x T) T {
	if op == OpNeg {
		return -x
	}
	return T(unaryOps[op].apply(float64(x)))
}

func applyBinary[T Float](op BinaryOp, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return T(binaryOps[op].apply(float64(a), float64(b)))
	}
}

// DType names the element type of T ("float32" or "float64").
func DType[T Float]() string {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return "float32"
	}
	return "float64"
}

func bitSize[T Float]() int {
	if DType[T]() == "float32" {
		return 32
	}
	return 64
}

// Const is a terminal node holding one immutable value.
type Const[T Float] struct {
	val T
}

// Var is a terminal node reading one positional evaluation argument.
type Var[T Float] struct {
	index  int
	symbol string
}

// Binary applies a binary operation to two child expressions.
type Binary[T Float] struct {
	op          BinaryOp
	left, right Expr[T]
}

// Unary applies a unary operation to a child expression.
type Unary[T Float] struct {
	op    UnaryOp
	child Expr[T]
}

func (*Const[T]) isExpr()  {}
func (*Var[T]) isExpr()    {}
func (*Binary[T]) isExpr() {}
func (*Unary[T]) isExpr()  {}

// Value returns the constant's value.
func (c *Const[T]) Value() T { return c.val }

// Index returns the argument position the variable reads.
func (v *Var[T]) Index() int { return v.index }

// Symbol returns the display symbol, or "" when the variable has none.
func (v *Var[T]) Symbol() string { return v.symbol }

func (b *Binary[T]) Op() BinaryOp   { return b.op }
func (b *Binary[T]) Left() Expr[T]  { return b.left }
func (b *Binary[T]) Right() Expr[T] { return b.right }

func (u *Unary[T]) Op() UnaryOp    { return u.op }
func (u *Unary[T]) Child() Expr[T] { return u.child }
