package autodiff

// Node wraps a value that is (transitively) a function of a differentiation
// argument. Creating a node appends a fresh shadow record to every tape it
// is given, so the same node can participate in several simultaneously open
// recordings (one per active gradient computation on the call stack).
//
// Nodes are immutable after creation. Records are referenced by integer
// handle into the owning tape's arena, never by shared pointer, so a node
// cannot dangle into a tape it was not created on.
type Node struct {
	value Value
	links map[*Tape]int // tape identity -> shadow record index
}

// NewNode wraps value and registers a shadow record on every given tape.
// A node is always created with at least one tape link.
func NewNode(value Value, tapes []*Tape) *Node {
	if len(tapes) == 0 {
		panic("autodiff: node created with no tape")
	}
	n := &Node{
		value: value,
		links: make(map[*Tape]int, len(tapes)),
	}
	for _, t := range tapes {
		n.links[t] = t.newRecord(value)
	}
	return n
}

// Value returns the wrapped value. For nodes created during a nested
// gradient computation this may itself be a *Node.
func (n *Node) Value() Value {
	return n.value
}

// recordOn reports the index of n's shadow record on t, if n was created
// while t was open.
func (n *Node) recordOn(t *Tape) (int, bool) {
	idx, ok := n.links[t]
	return idx, ok
}
