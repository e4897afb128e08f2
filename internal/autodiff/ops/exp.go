package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// expPrim is the exponential primitive: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x), which is the forward result itself
//   - grad_input = g * y
var expPrim = autodiff.NewPrimitive("exp", func(args ...float64) float64 {
	return math.Exp(args[0])
})

func init() {
	expPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Mul(g, result) }
	}, 1)
}

// Exp computes e**x.
func Exp(x autodiff.Value) autodiff.Value {
	return expPrim.Call(x)
}
