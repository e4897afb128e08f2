package ops

import "github.com/tapegrad/tapegrad/internal/autodiff"

// negPrim is the negation primitive: y = -x.
//
// Backward pass:
//   - d(-x)/dx = -1, so grad_input = -g
var negPrim = autodiff.NewPrimitive("neg", func(args ...float64) float64 {
	return -args[0]
})

func init() {
	negPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Neg(g) }
	}, 1)
}

// Neg computes -x.
func Neg(x autodiff.Value) autodiff.Value {
	return negPrim.Call(x)
}
