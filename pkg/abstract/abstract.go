// Package abstract collapses a segmented trie into a structure keyed
// by segment length.
//
// Sibling edges whose labels have the same token count are merged into
// one group: the grouped child unions the grandchildren of every merged
// edge and is terminal when any merged edge's child was terminal. The
// grouping repeats recursively over the unioned grandchildren, so
// structurally similar sequences collapse into shared shapes
// independent of the concrete tokens on each edge.
package abstract

import (
	"cmp"
	"slices"

	"github.com/ha1tch/abstrie/pkg/trie"
)

// GroupedNode is a node of a length-grouped trie. Groups are kept
// sorted by length, so iteration is deterministic.
//
// Nodes are immutable once returned by Transform and share no state
// with the segmented trie they were built from.
type GroupedNode[T cmp.Ordered] struct {
	groups   []Group[T]
	terminal bool
}

// Group is one merged sibling group. Its identity is the pair of
// Length and the set of segment labels folded into it: groups with the
// same length but different segment sets are distinct.
type Group[T cmp.Ordered] struct {
	Length   int   // token count shared by every segment in the group
	Segments [][]T // the folded segment labels, sorted
	Child    *GroupedNode[T]
}

// Terminal reports whether any segmented-trie node folded into this
// grouped node was terminal.
func (g *GroupedNode[T]) Terminal() bool {
	return g.terminal
}

// Groups returns the merged child groups in ascending length order.
// The returned slice is shared with the node and must not be modified.
func (g *GroupedNode[T]) Groups() []Group[T] {
	return g.groups
}

// TerminalCount returns the number of terminal nodes in the subtree.
// Merging only preserves or widens terminal-ness, so this is never
// smaller than the count of distinct terminal depths it replaces.
func (g *GroupedNode[T]) TerminalCount() int {
	count := 0
	if g.terminal {
		count = 1
	}
	for _, gr := range g.groups {
		count += gr.Child.TerminalCount()
	}
	return count
}

// NodeCount returns the number of nodes in the subtree, including the
// receiver.
func (g *GroupedNode[T]) NodeCount() int {
	count := 1
	for _, gr := range g.groups {
		count += gr.Child.NodeCount()
	}
	return count
}

// Transform builds the length-grouped trie for a segmented trie.
// The input is read only; the result is a fresh tree.
func Transform[T cmp.Ordered](root *trie.Node[T]) *GroupedNode[T] {
	return merge(root.Terminal(), root.Edges())
}

// merge builds one grouped node from a terminal flag and a set of
// edges sorted by label. The edges of the segmented trie arrive in
// that order from Node.Edges; synthesized grandchild unions keep it.
func merge[T cmp.Ordered](terminal bool, edges []trie.Edge[T]) *GroupedNode[T] {
	g := &GroupedNode[T]{terminal: terminal}
	if len(edges) == 0 {
		return g
	}

	byLen := make(map[int][]trie.Edge[T])
	var lengths []int
	for _, e := range edges {
		l := len(e.Label)
		if _, ok := byLen[l]; !ok {
			lengths = append(lengths, l)
		}
		byLen[l] = append(byLen[l], e)
	}
	slices.Sort(lengths)

	g.groups = make([]Group[T], 0, len(lengths))
	for _, l := range lengths {
		bucket := byLen[l]
		segments := make([][]T, 0, len(bucket))
		var grand []trie.Edge[T]
		childTerminal := false
		for _, e := range bucket {
			segments = append(segments, e.Label)
			if e.Child.Terminal() {
				childTerminal = true
			}
			for _, ge := range e.Child.Edges() {
				grand = upsertEdge(grand, ge)
			}
		}
		g.groups = append(g.groups, Group[T]{
			Length:   l,
			Segments: segments,
			Child:    merge(childTerminal, grand),
		})
	}
	return g
}

// upsertEdge inserts e into es keeping lexicographic label order. An
// existing edge with an equal label is replaced: when merged siblings
// carry grandchildren under colliding labels, the edge from the later
// sibling in label order wins.
func upsertEdge[T cmp.Ordered](es []trie.Edge[T], e trie.Edge[T]) []trie.Edge[T] {
	i, found := slices.BinarySearchFunc(es, e, func(a, b trie.Edge[T]) int {
		return slices.Compare(a.Label, b.Label)
	})
	if found {
		es[i] = e
		return es
	}
	return slices.Insert(es, i, e)
}
