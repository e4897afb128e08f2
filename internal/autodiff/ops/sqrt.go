package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// sqrtPrim is the square root primitive: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 1/(2*sqrt(x)) = 1/(2y)
//   - grad_input = g / (2 * y)
var sqrtPrim = autodiff.NewPrimitive("sqrt", func(args ...float64) float64 {
	return math.Sqrt(args[0])
})

func init() {
	sqrtPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value {
			return Div(g, Mul(2.0, result))
		}
	}, 1)
}

// Sqrt computes the square root of x.
func Sqrt(x autodiff.Value) autodiff.Value {
	return sqrtPrim.Call(x)
}
