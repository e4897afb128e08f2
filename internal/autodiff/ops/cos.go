package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// cosPrim is the cosine primitive: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = -(g * sin(x))
var cosPrim = autodiff.NewPrimitive("cos", func(args ...float64) float64 {
	return math.Cos(args[0])
})

func init() {
	cosPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value { return Neg(Mul(g, Sin(args[0]))) }
	}, 1)
}

// Cos computes cos(x).
func Cos(x autodiff.Value) autodiff.Value {
	return cosPrim.Call(x)
}
