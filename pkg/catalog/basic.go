package catalog

import "github.com/wildfunctions/symdiff/pkg/expr"

type ex = expr.Expr[float64]

func k(v float64) ex { return expr.Constant(v) }

func init() {
	for _, e := range []Entry{
		{
			Name: "sum", Description: "x + y",
			Vars: []string{"x", "y"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Add(v[0], v[1]) },
		},
		{
			Name: "difference", Description: "x - y",
			Vars: []string{"x", "y"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Sub(v[0], v[1]) },
		},
		{
			Name: "product", Description: "x * y",
			Vars: []string{"x", "y"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Mul(v[0], v[1]) },
		},
		{
			Name: "quotient", Description: "x / y",
			Vars: []string{"x", "y"}, Lo: 0.5, Hi: 3,
			Build: func(v []ex) ex { return expr.Div(v[0], v[1]) },
		},
		{
			Name: "power", Description: "x ^ y",
			Vars: []string{"x", "y"}, Lo: 0.5, Hi: 3,
			Build: func(v []ex) ex { return expr.Pow(v[0], v[1]) },
		},
		{
			Name: "exp2", Description: "2 ^ x",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex { return expr.Pow(k(2), v[0]) },
		},
		{
			Name: "cubic", Description: "x^3 - 2x + 1",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex {
				return expr.Add(expr.Sub(expr.Pow(v[0], k(3)), expr.Mul(k(2), v[0])), k(1))
			},
		},
		{
			Name: "self", Description: "x - x",
			Vars: []string{"x"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Sub(v[0], v[0].Clone()) },
		},
	} {
		e.Set = "basic"
		Register(e)
	}
}
