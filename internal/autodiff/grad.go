// Package autodiff implements reverse-mode automatic differentiation
// ("backpropagation") for scalar functions via operator interception.
//
// During a forward evaluation every Primitive call that receives a graph
// node argument records a shadow record and backward edges on each open
// Tape; the backward pass then walks the tape in reverse, accumulating and
// propagating gradients with the chain rule. Recording order doubles as
// the traversal order: execution is synchronous and single-threaded, so
// every consumer lands on the tape strictly after its producers and no
// extra topological sort is needed.
//
// Architecture:
//   - Node: value wrapper linking to its shadow record on every open tape
//   - Tape: append-only arena of shadow records, one per forward pass
//   - Primitive: a function plus per-argument gradient makers
//   - Grad/GradAt: the forward/backward orchestration pair
//
// Usage:
//
//	dsin := autodiff.Grad(func(args ...autodiff.Value) autodiff.Value {
//	    return ops.Sin(args[0])
//	})
//	g, err := dsin(1.0) // cos(1.0)
//
// Nested differentiation works by composing gradient functions:
//
//	d2sin := autodiff.Grad(autodiff.Grad(sin).Must)
package autodiff

import "errors"

// GradFunc is a gradient function returned by Grad or GradAt. It has the
// same argument list as the differentiated function and returns only the
// gradient. The error is non-nil when a required gradient maker is not
// registered or an argument cannot be differentiated.
type GradFunc func(args ...Value) (Value, error)

// Must calls g and panics on error. It exists so gradient functions
// compose: Grad(Grad(f).Must) is the second derivative of f.
func (g GradFunc) Must(args ...Value) Value {
	v, err := g(args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Grad returns the gradient of the scalar-valued f with respect to its
// first argument. The gradient has the same shape as that argument.
func Grad(f Func) GradFunc {
	return GradAt(f, 1)
}

// GradAt returns the gradient of the scalar-valued f with respect to the
// argument at the 1-based position argnum.
//
// Each invocation of the returned function records on its own fresh tape;
// no state is shared between calls. A *MissingGradientError raised while
// recording or traversing surfaces as the returned error; every other
// failure from f or its primitives propagates unchanged.
func GradAt(f Func, argnum int) GradFunc {
	return func(args ...Value) (grad Value, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			var missing *MissingGradientError
			if e, ok := r.(error); ok && errors.As(e, &missing) {
				grad, err = nil, e
				return
			}
			panic(r)
		}()
		seed, result, tape, err := forwardPass(f, args, argnum)
		if err != nil {
			return nil, err
		}
		return backwardPass(seed, result, tape), nil
	}
}
