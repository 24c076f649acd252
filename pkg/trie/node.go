package trie

import (
	"cmp"
	"slices"
)

// Node is a node of a segmented trie. Edges carry multi-token segment
// labels and are kept sorted lexicographically by label, so iteration
// over Edges is deterministic.
//
// Nodes are immutable once returned by Build. No two sibling labels are
// equal, and no sibling label is a token-wise prefix of another.
type Node[T cmp.Ordered] struct {
	edges    []Edge[T]
	terminal bool
}

// Edge is a labeled edge to a child node.
type Edge[T cmp.Ordered] struct {
	Label []T
	Child *Node[T]
}

// Terminal reports whether some input sequence ends exactly at this node.
func (n *Node[T]) Terminal() bool {
	return n.terminal
}

// Edges returns the outgoing edges in sorted label order.
// The returned slice is shared with the node and must not be modified.
func (n *Node[T]) Edges() []Edge[T] {
	return n.edges
}

// Contains reports whether the exact sequence is represented by a path
// from this node ending at a terminal node.
func (n *Node[T]) Contains(seq []T) bool {
	node := n
	pos := 0
	for pos < len(seq) {
		matched := false
		for _, e := range node.edges {
			if len(e.Label) > len(seq)-pos {
				continue
			}
			if slices.Equal(e.Label, seq[pos:pos+len(e.Label)]) {
				node = e.Child
				pos += len(e.Label)
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return node.terminal
}

// Sequences reconstructs the set of sequences represented by the trie,
// in sorted order. The root of an empty trie yields no sequences.
func (n *Node[T]) Sequences() [][]T {
	var out [][]T
	var prefix []T
	n.sequences(prefix, &out)
	return out
}

func (n *Node[T]) sequences(prefix []T, out *[][]T) {
	if n.terminal {
		*out = append(*out, slices.Clone(prefix))
	}
	for _, e := range n.edges {
		mark := len(prefix)
		prefix = append(prefix, e.Label...)
		e.Child.sequences(prefix, out)
		prefix = prefix[:mark]
	}
}

// NodeCount returns the number of nodes in the subtree, including the
// receiver.
func (n *Node[T]) NodeCount() int {
	count := 1
	for _, e := range n.edges {
		count += e.Child.NodeCount()
	}
	return count
}
