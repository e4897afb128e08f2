package ops

import "github.com/tapegrad/tapegrad/internal/autodiff"

// mulPrim is the multiplication primitive: y = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = g * b
//   - d(a*b)/db = a, so grad_b = g * a
var mulPrim = autodiff.NewPrimitive("mul", func(args ...float64) float64 {
	return args[0] * args[1]
})

func init() {
	mulPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Mul(g, args[1]) }
	}, 1)
	mulPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Mul(g, args[0]) }
	}, 2)
}

// Mul computes a * b.
func Mul(a, b autodiff.Value) autodiff.Value {
	return mulPrim.Call(a, b)
}
