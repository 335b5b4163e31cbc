package expr

import (
	"fmt"
	"math"
	"strconv"
)

// String methods

func (c *Const[T]) String() string {
	return strconv.FormatFloat(float64(c.val), 'g', -1, bitSize[T]())
}

func (v *Var[T]) String() string {
	if v.symbol != "" {
		return v.symbol
	}
	return fmt.Sprintf("Var<%d>", v.index)
}

func (u *Unary[T]) String() string {
	child := u.child.String()
	if u.op == OpNeg {
		return fmt.Sprintf("-(%s)", child)
	}
	name := unaryOps[u.op].name
	// Atoms get their own parens; compound args already carry some.
	if isAtom(u.child) {
		return fmt.Sprintf("(%s(%s))", name, child)
	}
	return fmt.Sprintf("(%s%s)", name, child)
}

func (b *Binary[T]) String() string {
	return fmt.Sprintf("(%s%s%s)", b.left.String(), binaryOps[b.op].symbol, b.right.String())
}

func isAtom[T Float](e Expr[T]) bool {
	switch e.(type) {
	case *Const[T], *Var[T]:
		return true
	default:
		return false
	}
}

// LaTeX methods

var unaryLaTeX = [numUnaryOps]string{
	OpSin:  `\sin`,
	OpCos:  `\cos`,
	OpTan:  `\tan`,
	OpExp:  `\exp`,
	OpLn:   `\ln`,
	OpSinh: `\sinh`,
	OpCosh: `\cosh`,
	OpTanh: `\tanh`,
}

func (c *Const[T]) LaTeX() string {
	return c.String()
}

func (v *Var[T]) LaTeX() string {
	if v.symbol != "" {
		return v.symbol
	}
	return fmt.Sprintf("x_{%d}", v.index)
}

func (u *Unary[T]) LaTeX() string {
	switch u.op {
	case OpNeg:
		return "-" + latexOperand(u.child, precMul)
	case OpSqrt:
		return fmt.Sprintf("\\sqrt{%s}", u.child.LaTeX())
	case OpCbrt:
		return fmt.Sprintf("\\sqrt[3]{%s}", u.child.LaTeX())
	default:
		return fmt.Sprintf("%s{(%s)}", unaryLaTeX[u.op], u.child.LaTeX())
	}
}

func (b *Binary[T]) LaTeX() string {
	switch b.op {
	case OpAdd:
		return latexOperand(b.left, precAdd) + " + " + latexOperand(b.right, precAdd)
	case OpSub:
		return latexOperand(b.left, precAdd) + " - " + latexOperand(b.right, precMul)
	case OpMul:
		return latexOperand(b.left, precMul) + ` \cdot ` + latexOperand(b.right, precMul)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", b.left.LaTeX(), b.right.LaTeX())
	case OpPow:
		return fmt.Sprintf("{%s}^{%s}", latexOperand(b.left, precAtom), b.right.LaTeX())
	default:
		return ""
	}
}

// LaTeX binding strength, loosest first.
const (
	precAdd = iota + 1
	precNeg
	precMul
	precFrac
	precPow
	precFunc
	precAtom
)

func latexPrec[T Float](e Expr[T]) int {
	switch n := e.(type) {
	case *Const[T]:
		if math.Signbit(float64(n.val)) {
			return precNeg
		}
		return precAtom
	case *Var[T]:
		return precAtom
	case *Unary[T]:
		if n.op == OpNeg {
			return precNeg
		}
		return precFunc
	case *Binary[T]:
		switch n.op {
		case OpAdd, OpSub:
			return precAdd
		case OpMul:
			return precMul
		case OpDiv:
			return precFrac
		default:
			return precPow
		}
	}
	return precAtom
}

// latexOperand renders e, parenthesized when it binds looser than need.
func latexOperand[T Float](e Expr[T], need int) string {
	if latexPrec(e) < need {
		return `\left(` + e.LaTeX() + `\right)`
	}
	return e.LaTeX()
}

// ToString renders e in parenthesized infix form.
func ToString[T Float](e Expr[T]) string {
	return e.String()
}
