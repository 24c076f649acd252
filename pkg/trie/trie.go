// Package trie builds tries over sequences of ordered tokens.
//
// Two structures are provided: Trie, a plain one-token-per-edge prefix
// trie kept as the conceptual baseline, and Node, a segmented trie
// whose edges carry multi-token segments chosen by a divergence-point
// heuristic (see Build). The segmented trie is the input to the
// length-grouped abstraction in package abstract.
package trie

import (
	"cmp"
	"slices"
)

// Trie is a basic prefix trie with one token per edge.
//
// It is not used by the segmentation pipeline; Build produces a
// segmented Node directly from the input sequences.
type Trie[T cmp.Ordered] struct {
	children map[T]*Trie[T]
	terminal bool
}

// NewTrie creates an empty basic trie.
func NewTrie[T cmp.Ordered]() *Trie[T] {
	return &Trie[T]{children: make(map[T]*Trie[T])}
}

// Insert adds a sequence to the trie, one token per level.
// Inserting the same sequence twice is a no-op.
func (t *Trie[T]) Insert(seq []T) {
	node := t
	for _, tok := range seq {
		child, ok := node.children[tok]
		if !ok {
			child = NewTrie[T]()
			node.children[tok] = child
		}
		node = child
	}
	node.terminal = true
}

// Contains reports whether the exact sequence was inserted.
func (t *Trie[T]) Contains(seq []T) bool {
	node := t
	for _, tok := range seq {
		child, ok := node.children[tok]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

// Terminal reports whether some inserted sequence ends at this node.
func (t *Trie[T]) Terminal() bool {
	return t.terminal
}

// Len returns the number of distinct sequences in the trie.
func (t *Trie[T]) Len() int {
	n := 0
	if t.terminal {
		n = 1
	}
	for _, child := range t.children {
		n += child.Len()
	}
	return n
}

// Children returns the child tokens in sorted order.
func (t *Trie[T]) Children() []T {
	toks := make([]T, 0, len(t.children))
	for tok := range t.children {
		toks = append(toks, tok)
	}
	slices.Sort(toks)
	return toks
}

// Child returns the subtree under a token.
func (t *Trie[T]) Child(tok T) (*Trie[T], bool) {
	child, ok := t.children[tok]
	return child, ok
}
