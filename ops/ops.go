// Copyright 2025 The Tapegrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the built-in differentiable math primitives.
//
// Every function behaves exactly like its math-package counterpart when
// called with plain numbers, and is recorded for differentiation when any
// argument is a graph node:
//
//	f := func(args ...autodiff.Value) autodiff.Value {
//	    return ops.Add(ops.Sin(args[0]), ops.Cos(args[1]))
//	}
//	gx, _ := autodiff.GradAt(f, 1)(1.0, 2.0) // cos(1.0)
//	gy, _ := autodiff.GradAt(f, 2)(1.0, 2.0) // -sin(2.0)
package ops

import (
	"github.com/tapegrad/tapegrad/autodiff"
	"github.com/tapegrad/tapegrad/internal/autodiff/ops"
)

// Add computes a + b.
func Add(a, b autodiff.Value) autodiff.Value { return ops.Add(a, b) }

// Sub computes a - b.
func Sub(a, b autodiff.Value) autodiff.Value { return ops.Sub(a, b) }

// Mul computes a * b.
func Mul(a, b autodiff.Value) autodiff.Value { return ops.Mul(a, b) }

// Div computes a / b.
func Div(a, b autodiff.Value) autodiff.Value { return ops.Div(a, b) }

// Neg computes -x.
func Neg(x autodiff.Value) autodiff.Value { return ops.Neg(x) }

// Sin computes sin(x).
func Sin(x autodiff.Value) autodiff.Value { return ops.Sin(x) }

// Cos computes cos(x).
func Cos(x autodiff.Value) autodiff.Value { return ops.Cos(x) }

// Tan computes tan(x).
func Tan(x autodiff.Value) autodiff.Value { return ops.Tan(x) }

// Exp computes e**x.
func Exp(x autodiff.Value) autodiff.Value { return ops.Exp(x) }

// Log computes the natural logarithm of x.
func Log(x autodiff.Value) autodiff.Value { return ops.Log(x) }

// Sqrt computes the square root of x.
func Sqrt(x autodiff.Value) autodiff.Value { return ops.Sqrt(x) }

// Pow computes x**e.
func Pow(x, e autodiff.Value) autodiff.Value { return ops.Pow(x, e) }
