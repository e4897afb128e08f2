package autodiff

import "fmt"

// Func is a scalar-valued function built from registered primitives. Its
// arguments and result are Values so the same code runs wrapped during
// recording and unwrapped outside it.
type Func func(args ...Value) Value

// forwardPass creates a fresh tape, wraps the argument at the 1-based
// position argnum into a seed node on that tape, and evaluates f with the
// seed substituted in. It returns the seed node, whatever f returned, and
// the tape.
//
// This is the only place a brand-new tape is created. A nested gradient
// computation calls forwardPass again with a seed whose value is itself a
// node, so the outer tape stays open and keeps recording alongside the
// inner one.
func forwardPass(f Func, args []Value, argnum int) (*Node, Value, *Tape, error) {
	if argnum < 1 || argnum > len(args) {
		return nil, nil, nil, fmt.Errorf("autodiff: argnum %d out of range for %d argument(s)", argnum, len(args))
	}
	seedValue, err := coerce(args[argnum-1])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("autodiff: argument %d: %w", argnum, err)
	}
	tape := NewTape()
	seed := NewNode(seedValue, []*Tape{tape})

	callArgs := append([]Value(nil), args...)
	callArgs[argnum-1] = seed
	result := f(callArgs...)
	return seed, result, tape, nil
}

// coerce promotes integer arguments to float64 so gradients are always
// real-valued. Nodes pass through untouched for nested differentiation.
func coerce(v Value) (Value, error) {
	switch x := v.(type) {
	case *Node:
		return x, nil
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
		return nil, fmt.Errorf("cannot differentiate with respect to a value of type %T", v)
	}
}
