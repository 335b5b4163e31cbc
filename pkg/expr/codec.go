package expr

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// jsonNode is the wire form of one node. DType is written on the root and
// accepted on any node.
type jsonNode struct {
	DType  string    `json:"dtype,omitempty"`
	Kind   string    `json:"kind"`
	Value  *number   `json:"value,omitempty"`
	Index  *int      `json:"index,omitempty"`
	Symbol string    `json:"symbol,omitempty"`
	Op     string    `json:"op,omitempty"`
	Left   *jsonNode `json:"left,omitempty"`
	Right  *jsonNode `json:"right,omitempty"`
	Child  *jsonNode `json:"child,omitempty"`
}

// number is a float64 on the wire. Non-finite values, which constant
// folding produces (Ln(0), 1/0), are written as the strings "NaN", "+Inf"
// and "-Inf".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (n *number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*n = number(math.NaN())
		case "+Inf", "Inf":
			*n = number(math.Inf(1))
		case "-Inf":
			*n = number(math.Inf(-1))
		default:
			return errors.Errorf("invalid number %q", s)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = number(v)
	return nil
}

const (
	kindConst  = "const"
	kindVar    = "var"
	kindUnary  = "unary"
	kindBinary = "binary"
)

// Marshal encodes a tree as JSON, tagging the root with its element type.
func Marshal[T Float](e Expr[T]) ([]byte, error) {
	root := toJSON(e)
	root.DType = DType[T]()
	return json.Marshal(root)
}

// Unmarshal decodes a tree produced by Marshal. Any node declaring a dtype
// other than T's fails with ErrTypeMismatch.
func Unmarshal[T Float](data []byte) (Expr[T], error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decoding expression")
	}
	return fromJSON[T](&root, "$")
}

func toJSON[T Float](node Expr[T]) *jsonNode {
	switch n := node.(type) {
	case *Const[T]:
		v := number(n.val)
		return &jsonNode{Kind: kindConst, Value: &v}
	case *Var[T]:
		i := n.index
		return &jsonNode{Kind: kindVar, Index: &i, Symbol: n.symbol}
	case *Unary[T]:
		return &jsonNode{Kind: kindUnary, Op: unaryOps[n.op].tag, Child: toJSON(n.child)}
	case *Binary[T]:
		return &jsonNode{
			Kind:  kindBinary,
			Op:    binaryOps[n.op].tag,
			Left:  toJSON(n.left),
			Right: toJSON(n.right),
		}
	default:
		panic(errors.Errorf("expr: unhandled node %T", node))
	}
}

func fromJSON[T Float](n *jsonNode, path string) (Expr[T], error) {
	if n == nil {
		return nil, errors.Wrapf(ErrUnknownNode, "%s: missing node", path)
	}
	if n.DType != "" && n.DType != DType[T]() {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s: node is %s, tree is %s", path, n.DType, DType[T]())
	}

	switch n.Kind {
	case kindConst:
		if n.Value == nil {
			return nil, errors.Wrapf(ErrUnknownNode, "%s: constant without value", path)
		}
		return &Const[T]{val: T(*n.Value)}, nil

	case kindVar:
		if n.Index == nil || *n.Index < 0 {
			return nil, errors.Wrapf(ErrInvalidIndex, "%s", path)
		}
		return &Var[T]{index: *n.Index, symbol: n.Symbol}, nil

	case kindUnary:
		op, ok := unaryByTag(n.Op)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "%s: unary op %q", path, n.Op)
		}
		child, err := fromJSON[T](n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		return &Unary[T]{op: op, child: child}, nil

	case kindBinary:
		op, ok := binaryByTag(n.Op)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "%s: binary op %q", path, n.Op)
		}
		left, err := fromJSON[T](n.Left, path+".left")
		if err != nil {
			return nil, err
		}
		right, err := fromJSON[T](n.Right, path+".right")
		if err != nil {
			return nil, err
		}
		return &Binary[T]{op: op, left: left, right: right}, nil

	default:
		return nil, errors.Wrapf(ErrUnknownNode, "%s: kind %q", path, n.Kind)
	}
}

func unaryByTag(tag string) (UnaryOp, bool) {
	for op, info := range unaryOps {
		if info.tag == tag {
			return UnaryOp(op), true
		}
	}
	return 0, false
}

func binaryByTag(tag string) (BinaryOp, bool) {
	for op, info := range binaryOps {
		if info.tag == tag {
			return BinaryOp(op), true
		}
	}
	return 0, false
}
