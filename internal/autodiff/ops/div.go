package ops

import "github.com/tapegrad/tapegrad/internal/autodiff"

// divPrim is the division primitive: y = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = g / b
//   - d(a/b)/db = -a/b², so grad_b = -(g * a) / (b * b)
var divPrim = autodiff.NewPrimitive("div", func(args ...float64) float64 {
	return args[0] / args[1]
})

func init() {
	divPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Div(g, args[1]) }
	}, 1)
	divPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value {
			return Neg(Div(Mul(g, args[0]), Mul(args[1], args[1])))
		}
	}, 2)
}

// Div computes a / b.
func Div(a, b autodiff.Value) autodiff.Value {
	return divPrim.Call(a, b)
}
