package autodiff

import "fmt"

// Tape is an append-only log of shadow records for one forward pass.
// Creation order on the tape is a valid reverse-topological order of the
// computation DAG: recording happens synchronously in the exact order
// operations execute, so every consumer appears strictly after all of its
// producers. The backward pass relies on this and walks the arena in
// reverse.
//
// A tape is owned by the gradient computation that created it and is
// discarded once the corresponding backward pass returns. Appending to a
// completed tape is a contract violation and panics.
type Tape struct {
	arena    []record
	complete bool // completion sentinel
}

// record is the per-node bookkeeping on one tape: backward edges populated
// when the node is later consumed, and pending gradient contributions
// accumulated during the backward pass. Origin metadata is copied from the
// owning node at creation for sanity checks.
type record struct {
	edges      []edge
	pending    []Value
	origin     Value
	originType string
}

// edge is one backward edge: the producer's record index on the same tape
// and the transform mapping an upstream gradient into the local gradient
// for that producer. Edges are stored at the consumer and point back to
// the producer, matching the reverse-traversal direction.
type edge struct {
	parent    int
	transform Transform
}

// NewTape returns an empty tape ready for recording.
func NewTape() *Tape {
	return &Tape{arena: make([]record, 0, 64)}
}

// newRecord appends a fresh shadow record holding origin metadata and
// returns its arena index.
func (t *Tape) newRecord(origin Value) int {
	if t.complete {
		panic("autodiff: append to completed tape")
	}
	t.arena = append(t.arena, record{
		origin:     origin,
		originType: fmt.Sprintf("%T", origin),
	})
	return len(t.arena) - 1
}

// addEdge appends a backward edge to the record at idx.
func (t *Tape) addEdge(idx int, e edge) {
	if t.complete {
		panic("autodiff: record edge on completed tape")
	}
	t.arena[idx].edges = append(t.arena[idx].edges, e)
}

// Complete appends the completion sentinel, freezing the tape. Completing
// a tape twice is a contract violation and panics. Calls intercepted after
// completion still produce values, but this tape is excluded from their
// gradient recording — that exclusion is what keeps differentiation running
// inside a backward pass from double-recording the finished computation.
func (t *Tape) Complete() {
	if t.complete {
		panic("autodiff: tape completed twice")
	}
	t.complete = true
}

// IsComplete reports whether the completion sentinel has been appended.
func (t *Tape) IsComplete() bool {
	return t.complete
}

// Len returns the number of shadow records on the tape, excluding the
// completion sentinel.
func (t *Tape) Len() int {
	return len(t.arena)
}
