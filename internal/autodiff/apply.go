package autodiff

import "fmt"

// tapeRef is one (tape, argument position, parent record) triple collected
// while partitioning a call's arguments.
type tapeRef struct {
	tape   *Tape
	argnum int
	parent int
}

// Call applies the primitive to args. With no node arguments it converts
// the arguments to float64 and invokes the underlying function directly —
// plain pass-through, the common case outside any active differentiation.
//
// With at least one node argument the call is intercepted:
//
//  1. For every node argument not marked zero-gradient, walk down its node
//     layers and collect a tapeRef for each layer's tape that is still
//     open. Open tapes can hide at any depth: a nested seed wraps an
//     outer node, so one argument may carry links for several recordings
//     at once. Completed tapes are treated as inactive and excluded.
//  2. Strip every node layer to reach the plain value and invoke the
//     underlying function once.
//  3. If nothing was collected, return the raw result unwrapped.
//  4. Otherwise wrap the raw result in a single new node linked to the
//     union of the collected tapes, and for each triple append a backward
//     edge to the result's own record on that tape. The edge's transform
//     comes from the position's gradient maker applied to the wrapped
//     result and the original arguments; a position with no maker
//     registered panics with a *MissingGradientError, which Grad recovers
//     and returns.
func (p *Primitive) Call(args ...Value) Value {
	hasNode := false
	for _, arg := range args {
		if _, ok := arg.(*Node); ok {
			hasNode = true
			break
		}
	}
	if !hasNode {
		return p.rawCall(args)
	}

	var (
		refs  []tapeRef
		tapes []*Tape
	)
	plain := append([]Value(nil), args...)
	for i, arg := range args {
		n, ok := arg.(*Node)
		if !ok {
			continue
		}
		_, zero := p.zeroGrad[i+1]
		for {
			if !zero {
				for t, idx := range n.links {
					if t.IsComplete() {
						continue
					}
					refs = append(refs, tapeRef{tape: t, argnum: i + 1, parent: idx})
					if !containsTape(tapes, t) {
						tapes = append(tapes, t)
					}
				}
			}
			inner, wrapped := n.value.(*Node)
			if !wrapped {
				break
			}
			n = inner
		}
		plain[i] = n.value
	}

	raw := p.rawCall(plain)
	if len(refs) == 0 {
		return raw
	}

	result := NewNode(raw, tapes)
	for _, ref := range refs {
		maker, err := p.maker(ref.argnum)
		if err != nil {
			panic(err)
		}
		own, _ := result.recordOn(ref.tape)
		ref.tape.addEdge(own, edge{
			parent:    ref.parent,
			transform: maker(result, args...),
		})
	}
	return result
}

// rawCall invokes the underlying function on plain numeric arguments.
func (p *Primitive) rawCall(args []Value) Value {
	floats := make([]float64, len(args))
	for i, arg := range args {
		f, err := Float(arg)
		if err != nil {
			panic(fmt.Errorf("autodiff: %s argument %d: %w", p.name, i+1, err))
		}
		floats[i] = f
	}
	return p.fn(floats...)
}

func containsTape(tapes []*Tape, t *Tape) bool {
	for _, seen := range tapes {
		if seen == t {
			return true
		}
	}
	return false
}
