package autodiff

import "fmt"

// Value is the dynamic value type threaded through differentiable code.
// A Value is either a plain number (float64; ints and float32 are coerced
// on the way in) or a *Node wrapping another Value — recursively, when a
// computation is being recorded on one or more open tapes at once.
type Value = any

// Unwrap strips one Node layer from v. Non-node values pass through
// unchanged, which lets callers treat wrapped and unwrapped values
// uniformly.
func Unwrap(v Value) Value {
	if n, ok := v.(*Node); ok {
		return n.value
	}
	return v
}

// Float strips every Node layer from v and coerces the underlying number
// to float64. It returns an error for non-numeric values.
func Float(v Value) (float64, error) {
	for {
		n, ok := v.(*Node)
		if !ok {
			break
		}
		v = n.value
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", v)
	}
}

// zeroLike returns the additive identity matching the shape of a seed
// value. Values are scalars; array-shaped zeros are the extension point
// for vector support.
func zeroLike(v Value) Value {
	return 0.0
}
