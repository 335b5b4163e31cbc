package catalog

import "github.com/wildfunctions/symdiff/pkg/expr"

func init() {
	for _, e := range []Entry{
		{
			Name: "sinh", Description: "Sinh(x)",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex { return expr.Sinh(v[0]) },
		},
		{
			Name: "cosh", Description: "Cosh(x)",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex { return expr.Cosh(v[0]) },
		},
		{
			Name: "tanh", Description: "Tanh(x)",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex { return expr.Tanh(v[0]) },
		},
		{
			Name: "catenary", Description: "y * Cosh(x / y)",
			Vars: []string{"x", "y"}, Lo: 0.5, Hi: 2,
			Build: func(v []ex) ex { return expr.Mul(v[1], expr.Cosh(expr.Div(v[0], v[1].Clone()))) },
		},
	} {
		e.Set = "hyperbolic"
		Register(e)
	}
}
