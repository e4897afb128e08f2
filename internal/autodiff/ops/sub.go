package ops

import "github.com/tapegrad/tapegrad/internal/autodiff"

// subPrim is the subtraction primitive: y = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
var subPrim = autodiff.NewPrimitive("sub", func(args ...float64) float64 {
	return args[0] - args[1]
})

func init() {
	subPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return g }
	}, 1)
	subPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Neg(g) }
	}, 2)
}

// Sub computes a - b.
func Sub(a, b autodiff.Value) autodiff.Value {
	return subPrim.Call(a, b)
}
