// Copyright 2025 The Tapegrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation for
// scalar functions.
//
// A computation history ("tape") is recorded while the target function
// runs; the backward pass then walks that tape in reverse applying the
// chain rule, yielding exact gradients.
//
// Example:
//
//	import (
//	    "github.com/tapegrad/tapegrad/autodiff"
//	    "github.com/tapegrad/tapegrad/ops"
//	)
//
//	func main() {
//	    sin := func(args ...autodiff.Value) autodiff.Value {
//	        return ops.Sin(args[0])
//	    }
//	    dsin := autodiff.Grad(sin)
//	    g, _ := dsin(1.0) // cos(1.0) ≈ 0.5403
//
//	    // Second derivative via composition:
//	    d2sin := autodiff.Grad(autodiff.Grad(sin).Must)
//	    g2, _ := d2sin(1.0) // -sin(1.0)
//	}
//
// New differentiable primitives are registered with NewPrimitive and the
// DefineGradient family; see the ops package for the built-in set.
package autodiff

import (
	"github.com/tapegrad/tapegrad/internal/autodiff"
)

// Value is the dynamic value type threaded through differentiable code:
// a plain number, or a graph node while recording is active.
type Value = autodiff.Value

// Node is the value wrapper linking a recorded value to its shadow records
// across all currently open tapes.
type Node = autodiff.Node

// Tape is the append-only log of shadow records for one forward pass.
type Tape = autodiff.Tape

// Func is a scalar-valued function built from registered primitives.
type Func = autodiff.Func

// GradFunc is the gradient function returned by Grad and GradAt.
type GradFunc = autodiff.GradFunc

// Primitive wraps one differentiable function for call interception.
type Primitive = autodiff.Primitive

// Transform maps an upstream gradient to a local gradient along one
// backward edge.
type Transform = autodiff.Transform

// GradientMaker builds the Transform for one argument position from a
// call's result and original arguments.
type GradientMaker = autodiff.GradientMaker

// GradientMakerTemplate is a GradientMaker parameterized by argument
// position.
type GradientMakerTemplate = autodiff.GradientMakerTemplate

// MissingGradientError reports a gradient request for a primitive and
// argument position with no registered gradient maker.
type MissingGradientError = autodiff.MissingGradientError

// Grad returns the gradient of f with respect to its first argument.
//
// Example:
//
//	g, err := autodiff.Grad(f)(3.0)
func Grad(f Func) GradFunc {
	return autodiff.Grad(f)
}

// GradAt returns the gradient of f with respect to the argument at the
// 1-based position argnum.
func GradAt(f Func, argnum int) GradFunc {
	return autodiff.GradAt(f, argnum)
}

// NewPrimitive wraps a plain function for interception. The name appears
// in missing-gradient failures.
func NewPrimitive(name string, fn func(args ...float64) float64) *Primitive {
	return autodiff.NewPrimitive(name, fn)
}

// DefineGradient registers one gradient maker for one 1-based argument
// position of p.
func DefineGradient(p *Primitive, maker GradientMaker, argnum int) {
	p.DefineGradient(maker, argnum)
}

// DefineGradients registers the template, partially applied per position,
// across several 1-based argument positions of p.
func DefineGradients(p *Primitive, tmpl GradientMakerTemplate, argnums ...int) {
	p.DefineGradients(tmpl, argnums...)
}

// MarkZeroGradient declares 1-based argument positions of p that
// contribute no gradient.
func MarkZeroGradient(p *Primitive, argnums ...int) {
	p.MarkZeroGradient(argnums...)
}

// Unwrap strips one node layer from v; non-node values pass through.
func Unwrap(v Value) Value {
	return autodiff.Unwrap(v)
}

// Float strips every node layer from v and coerces the result to float64.
func Float(v Value) (float64, error) {
	return autodiff.Float(v)
}
