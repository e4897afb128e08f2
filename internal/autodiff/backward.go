package autodiff

import (
	"fmt"
	"log/slog"
)

// gradAdd sums two gradient contributions. Accumulation goes through a
// Primitive rather than raw float math so that sums of node-valued
// gradients re-enter interception and record on any still-open outer tape.
var gradAdd = func() *Primitive {
	p := NewPrimitive("gradient_add", func(args ...float64) float64 {
		return args[0] + args[1]
	})
	p.DefineGradients(func(argnum int, result Value, args ...Value) Transform {
		return func(upstream Value) Value { return upstream }
	}, 1, 2)
	return p
}()

// backwardPass walks the tape in strict reverse creation order applying
// the chain rule, and returns the gradient of result with respect to the
// seed node.
//
// If the result is not a node, or carries no shadow record on this tape,
// the output did not depend on the seed: the gradient is the additive
// identity for the seed's shape. That outcome is valid but usually a user
// error, so it is reported on the diagnostic log channel.
//
// The tape is completed before traversal begins, so primitives invoked by
// the edge transforms themselves (during this backward pass) see it as
// inactive and do not record onto it.
func backwardPass(seed *Node, result Value, tape *Tape) Value {
	if tape.IsComplete() {
		panic("autodiff: backward pass on completed tape")
	}
	seedIdx, ok := seed.recordOn(tape)
	if !ok {
		panic("autodiff: seed node has no record on tape")
	}
	if rec := tape.arena[seedIdx]; rec.originType != fmt.Sprintf("%T", seed.value) {
		panic("autodiff: seed record origin mismatch (" + rec.originType + ")")
	}

	resIdx := -1
	if node, isNode := result.(*Node); isNode {
		if idx, linked := node.recordOn(tape); linked {
			resIdx = idx
		}
	}
	if resIdx < 0 {
		tape.Complete()
		slog.Warn("autodiff: output is independent of the differentiation argument; gradient is zero")
		return zeroLike(seed.value)
	}

	for i := range tape.arena {
		tape.arena[i].pending = nil
	}
	// d(result)/d(result) = 1.
	tape.arena[resIdx].pending = append(tape.arena[resIdx].pending, 1.0)
	tape.Complete()

	grad := zeroLike(seed.value)
	for i := tape.Len() - 1; i >= 0; i-- {
		rec := &tape.arena[i]
		if len(rec.pending) == 0 {
			// Unreached: no consumer routed gradient here.
			continue
		}
		acc := accumulate(rec.pending)
		if i == seedIdx {
			grad = acc
		}
		for _, e := range rec.edges {
			local := e.transform(acc)
			tape.arena[e.parent].pending = append(tape.arena[e.parent].pending, local)
		}
	}
	return grad
}

// accumulate folds pending gradient contributions into a single value.
func accumulate(pending []Value) Value {
	acc := pending[0]
	for _, g := range pending[1:] {
		acc = gradAdd.Call(acc, g)
	}
	return acc
}
