package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// tanPrim is the tangent primitive: y = tan(x).
//
// Backward pass:
//   - d(tan(x))/dx = 1/cos²(x)
//   - grad_input = g / (cos(x) * cos(x))
var tanPrim = autodiff.NewPrimitive("tan", func(args ...float64) float64 {
	return math.Tan(args[0])
})

func init() {
	tanPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value {
			c := Cos(args[0])
			return Div(g, Mul(c, c))
		}
	}, 1)
}

// Tan computes tan(x).
func Tan(x autodiff.Value) autodiff.Value {
	return tanPrim.Call(x)
}
