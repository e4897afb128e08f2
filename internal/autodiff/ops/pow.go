package ops

import (
	"math"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// powPrim is the power primitive: y = x**e.
//
// Backward pass:
//   - dy/dx = e * x**(e-1), so grad_x = g * e * x**(e-1)
//   - dy/de = y * log(x), so grad_e = g * y * log(x)
//
// The exponent gradient requires x > 0, as with math.Log.
var powPrim = autodiff.NewPrimitive("pow", func(args ...float64) float64 {
	return math.Pow(args[0], args[1])
})

func init() {
	powPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value {
			return Mul(g, Mul(args[1], Pow(args[0], Sub(args[1], 1.0))))
		}
	}, 1)
	powPrim.DefineGradient(func(result autodiff.Value, args ...autodiff.Value) autodiff.Transform {
		return func(g autodiff.Value) autodiff.Value {
			return Mul(g, Mul(result, Log(args[0])))
		}
	}, 2)
}

// Pow computes x**e.
func Pow(x, e autodiff.Value) autodiff.Value {
	return powPrim.Call(x, e)
}
