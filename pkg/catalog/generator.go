package catalog

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

// Generator builds random expression trees from a fixed set of building
// blocks. Trees reference variables 0..Vars-1 and integer constants 1..MaxConst.
type Generator struct {
	Name     string
	Vars     int
	MaxConst int
	Unary    []expr.UnaryOp
	Binary   []expr.BinaryOp
}

var generators = map[string]Generator{
	// basic arithmetic and negation
	"conservative": {
		Name: "conservative", Vars: 2, MaxConst: 10,
		Unary:  []expr.UnaryOp{expr.OpNeg},
		Binary: []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv},
	},
	// adds roots, exp/ln and powers
	"moderate": {
		Name: "moderate", Vars: 2, MaxConst: 10,
		Unary:  []expr.UnaryOp{expr.OpNeg, expr.OpSqrt, expr.OpCbrt, expr.OpExp, expr.OpLn},
		Binary: []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv, expr.OpPow},
	},
	// every operation
	"kitchensink": {
		Name: "kitchensink", Vars: 3, MaxConst: 10,
		Unary:  expr.UnaryOps(),
		Binary: expr.BinaryOps(),
	},
}

// GetGenerator returns a generator by name.
func GetGenerator(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return Generator{}, fmt.Errorf("unknown generator: %s", name)
	}
	return g, nil
}

// GeneratorNames returns all generator names, sorted.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for k := range generators {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RandomLeaf returns a variable or a small positive integer constant.
func (g Generator) RandomLeaf(rng *rand.Rand) expr.Expr[float64] {
	if g.Vars > 0 && rng.Float64() < 0.5 {
		i := rng.Intn(g.Vars)
		return expr.Variable[float64](i, string(rune('x'+i%3)))
	}
	return expr.Constant(float64(rng.Intn(max(g.MaxConst, 1)) + 1))
}

func (g Generator) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return g.Unary[rng.Intn(len(g.Unary))]
}

func (g Generator) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return g.Binary[rng.Intn(len(g.Binary))]
}

// RandomTree builds a tree no deeper than maxDepth.
func (g Generator) RandomTree(rng *rand.Rand, maxDepth int) expr.Expr[float64] {
	if maxDepth <= 1 {
		return g.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.3:
		return g.RandomLeaf(rng)
	case r < 0.5 && len(g.Unary) > 0:
		return expr.NewUnary(g.RandomUnary(rng), g.RandomTree(rng, maxDepth-1))
	default:
		return expr.NewBinary(g.RandomBinary(rng),
			g.RandomTree(rng, maxDepth-1),
			g.RandomTree(rng, maxDepth-1),
		)
	}
}
