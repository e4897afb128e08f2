package ops

import "github.com/tapegrad/tapegrad/internal/autodiff"

// addPrim is the addition primitive: y = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, d(a+b)/db = 1
//   - the upstream gradient flows to both arguments unchanged
var addPrim = autodiff.NewPrimitive("add", func(args ...float64) float64 {
	return args[0] + args[1]
})

// Gradient makers reference the exported op functions, so they are
// registered in init rather than in the variable initializers.
func init() {
	addPrim.DefineGradients(func(argnum int, result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return g }
	}, 1, 2)
}

// Add computes a + b.
func Add(a, b autodiff.Value) autodiff.Value {
	return addPrim.Call(a, b)
}
