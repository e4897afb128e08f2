package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// sinPrim is the sine primitive: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = g * cos(x)
var sinPrim = autodiff.NewPrimitive("sin", func(args ...float64) float64 {
	return math.Sin(args[0])
})

func init() {
	sinPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Mul(g, Cos(args[0])) }
	}, 1)
}

// Sin computes sin(x).
func Sin(x autodiff.Value) autodiff.Value {
	return sinPrim.Call(x)
}
