package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// logPrim is the natural logarithm primitive: y = log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//   - grad_input = g / x
//
// Input values must be positive, as with math.Log.
var logPrim = autodiff.NewPrimitive("log", func(args ...float64) float64 {
	return math.Log(args[0])
})

func init() {
	logPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Div(g, args[0]) }
	}, 1)
}

// Log computes the natural logarithm of x.
func Log(x autodiff.Value) autodiff.Value {
	return logPrim.Call(x)
}
