package catalog

import "github.com/wildfunctions/symdiff/pkg/expr"

func init() {
	for _, e := range []Entry{
		{
			Name: "sin", Description: "Sin(x)",
			Vars: []string{"x"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Sin(v[0]) },
		},
		{
			Name: "cos", Description: "Cos(x)",
			Vars: []string{"x"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex { return expr.Cos(v[0]) },
		},
		{
			Name: "tan", Description: "Tan(x)",
			Vars: []string{"x"}, Lo: -1.2, Hi: 1.2,
			Build: func(v []ex) ex { return expr.Tan(v[0]) },
		},
		{
			Name: "exp", Description: "Exp(x)",
			Vars: []string{"x"}, Lo: -2, Hi: 2,
			Build: func(v []ex) ex { return expr.Exp(v[0]) },
		},
		{
			Name: "ln", Description: "Ln(x)",
			Vars: []string{"x"}, Lo: 0.5, Hi: 4,
			Build: func(v []ex) ex { return expr.Ln(v[0]) },
		},
		{
			Name: "sqrt", Description: "Sqrt(x)",
			Vars: []string{"x"}, Lo: 0.5, Hi: 9,
			Build: func(v []ex) ex { return expr.Sqrt(v[0]) },
		},
		{
			Name: "cbrt", Description: "Cbrt(x)",
			Vars: []string{"x"}, Lo: 0.5, Hi: 9,
			Build: func(v []ex) ex { return expr.Cbrt(v[0]) },
		},
		{
			Name: "reciprocal-sin", Description: "1 / Sin(Exp(x) * y)",
			Vars: []string{"x", "y"}, Lo: 0.1, Hi: 0.5,
			Build: func(v []ex) ex {
				return expr.Div(k(1), expr.Sin(expr.Mul(expr.Exp(v[0]), v[1])))
			},
		},
		{
			Name: "gaussian", Description: "Exp(-(x*x) / 2)",
			Vars: []string{"x"}, Lo: -3, Hi: 3,
			Build: func(v []ex) ex {
				return expr.Exp(expr.Div(expr.Neg(expr.Mul(v[0], v[0].Clone())), k(2)))
			},
		},
	} {
		e.Set = "transcendental"
		Register(e)
	}
}
