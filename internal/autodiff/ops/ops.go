// Package ops registers the differentiable math primitives consumed by
// user code.
//
// Each operation is a Primitive with gradient makers per argument position
// and an exported function that routes through interception. With plain
// numeric arguments every function behaves exactly like its math-package
// counterpart; with a graph node argument the call is recorded for
// differentiation.
//
// Supported operations:
//   - Add, Sub, Mul, Div, Neg (d(a+b)/da = 1, d(a*b)/da = b, ...)
//   - Sin, Cos, Tan
//   - Exp, Log, Sqrt, Pow
//
// Gradient makers are expressed in terms of other registered operations,
// never raw float math, so their transforms re-enter interception and
// higher-order derivatives record correctly.
package ops
