package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// TestForward_MatchesMath tests that every op is a plain pass-through when
// called without graph nodes.
func TestForward_MatchesMath(t *testing.T) {
	tests := []struct {
		name string
		got  autodiff.Value
		want float64
	}{
		{"add", Add(2.0, 3.0), 5.0},
		{"sub", Sub(2.0, 3.0), -1.0},
		{"mul", Mul(2.0, 3.0), 6.0},
		{"div", Div(3.0, 2.0), 1.5},
		{"neg", Neg(2.0), -2.0},
		{"sin", Sin(1.0), math.Sin(1.0)},
		{"cos", Cos(1.0), math.Cos(1.0)},
		{"tan", Tan(0.5), math.Tan(0.5)},
		{"exp", Exp(1.5), math.Exp(1.5)},
		{"log", Log(2.0), math.Log(2.0)},
		{"sqrt", Sqrt(2.0), math.Sqrt(2.0)},
		{"pow", Pow(2.0, 3.0), 8.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.got.(float64)
			require.True(t, ok, "pass-through result should be a plain float64, got %T", tt.got)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}
}

// TestGradients_ClosedForm tests each op's gradient against the
// closed-form derivative.
func TestGradients_ClosedForm(t *testing.T) {
	x := 1.3
	tests := []struct {
		name string
		f    autodiff.Func
		want float64
	}{
		{"add: d(x+2)/dx = 1", func(args ...autodiff.Value) autodiff.Value {
			return Add(args[0], 2.0)
		}, 1.0},
		{"sub: d(2-x)/dx = -1", func(args ...autodiff.Value) autodiff.Value {
			return Sub(2.0, args[0])
		}, -1.0},
		{"mul: d(x*x)/dx = 2x", func(args ...autodiff.Value) autodiff.Value {
			return Mul(args[0], args[0])
		}, 2 * x},
		{"div: d(1/x)/dx = -1/x²", func(args ...autodiff.Value) autodiff.Value {
			return Div(1.0, args[0])
		}, -1 / (x * x)},
		{"neg: d(-x)/dx = -1", func(args ...autodiff.Value) autodiff.Value {
			return Neg(args[0])
		}, -1.0},
		{"sin: cos(x)", func(args ...autodiff.Value) autodiff.Value {
			return Sin(args[0])
		}, math.Cos(x)},
		{"cos: -sin(x)", func(args ...autodiff.Value) autodiff.Value {
			return Cos(args[0])
		}, -math.Sin(x)},
		{"tan: 1/cos²(x)", func(args ...autodiff.Value) autodiff.Value {
			return Tan(args[0])
		}, 1 / (math.Cos(x) * math.Cos(x))},
		{"exp: exp(x)", func(args ...autodiff.Value) autodiff.Value {
			return Exp(args[0])
		}, math.Exp(x)},
		{"log: 1/x", func(args ...autodiff.Value) autodiff.Value {
			return Log(args[0])
		}, 1 / x},
		{"sqrt: 1/(2√x)", func(args ...autodiff.Value) autodiff.Value {
			return Sqrt(args[0])
		}, 1 / (2 * math.Sqrt(x))},
		{"pow base: 3x²", func(args ...autodiff.Value) autodiff.Value {
			return Pow(args[0], 3.0)
		}, 3 * x * x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := autodiff.Grad(tt.f)(x)
			require.NoError(t, err)
			v, err := autodiff.Float(g)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}
}

// TestPow_ExponentGradient tests d(b^e)/de = b^e · ln b.
func TestPow_ExponentGradient(t *testing.T) {
	f := func(args ...autodiff.Value) autodiff.Value {
		return Pow(3.0, args[0])
	}
	e := 2.0
	g, err := autodiff.GradAt(f, 1)(e)
	require.NoError(t, err)
	v, err := autodiff.Float(g)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(3.0, e)*math.Log(3.0), v, 1e-12)
}

// TestGradients_ChainThroughEveryOp runs one long composition touching
// every unary op and checks it against the hand-derived result.
func TestGradients_ChainThroughEveryOp(t *testing.T) {
	// f(x) = log(sqrt(exp(sin(x)) + 1))
	f := func(args ...autodiff.Value) autodiff.Value {
		return Log(Sqrt(Add(Exp(Sin(args[0])), 1.0)))
	}
	x := 0.8
	g, err := autodiff.Grad(f)(x)
	require.NoError(t, err)
	v, err := autodiff.Float(g)
	require.NoError(t, err)

	// f = ½·log(exp(sin x) + 1), so f' = ½ · exp(sin x)·cos x / (exp(sin x)+1).
	es := math.Exp(math.Sin(x))
	want := 0.5 * es * math.Cos(x) / (es + 1)
	assert.InDelta(t, want, v, 1e-12)
}
