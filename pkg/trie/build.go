package trie

import (
	"cmp"
	"slices"
)

// Build constructs a segmented trie over the given sequences.
//
// Every input sequence is represented by exactly one root path whose
// concatenated edge labels equal the sequence, ending at a terminal
// node. Segment boundaries are chosen at divergence points, so the trie
// exposes branching structure instead of degenerate one-token chains.
// Duplicate sequences collapse to one path. An empty input yields a
// single non-terminal leaf.
func Build[T cmp.Ordered](sequences [][]T) *Node[T] {
	return build(sequences, 0)
}

// BuildFromWords builds a segmented trie over the characters of each word.
func BuildFromWords(words []string) *Node[rune] {
	seqs := make([][]rune, len(words))
	for i, w := range words {
		seqs[i] = []rune(w)
	}
	return Build(seqs)
}

// segGroup is one child under construction: the segment label and the
// sequences that continue through it.
type segGroup[T cmp.Ordered] struct {
	label []T
	seqs  [][]T
}

// build constructs the subtree for the sequences that reach offset pos.
// Sequences shorter than pos have ended on an ancestor edge and must
// not be passed down.
func build[T cmp.Ordered](seqs [][]T, pos int) *Node[T] {
	n := &Node[T]{}
	var active [][]T
	for _, s := range seqs {
		switch {
		case len(s) == pos:
			n.terminal = true
		case len(s) > pos:
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return n
	}

	l := commonPrefixLen(active, pos)
	if l > 0 && followerCount(active, pos+l) == 1 {
		// Everything past the shared prefix is identical (all sequences
		// end there), so the prefix becomes a single edge.
		child := build(active, pos+l)
		n.edges = []Edge[T]{{Label: slices.Clone(active[0][pos : pos+l]), Child: child}}
		return n
	}

	var groups []segGroup[T]
	if l > 0 {
		groups = divergentGroups(active, pos)
	} else {
		groups = firstTokenGroups(active, pos)
	}
	n.edges = make([]Edge[T], len(groups))
	for i, g := range groups {
		n.edges[i] = Edge[T]{Label: g.label, Child: build(g.seqs, pos+len(g.label))}
	}
	slices.SortFunc(n.edges, func(a, b Edge[T]) int {
		return slices.Compare(a.Label, b.Label)
	})
	return n
}

// commonPrefixLen returns the largest l such that all sequences agree
// on every token in [pos, pos+l).
func commonPrefixLen[T cmp.Ordered](seqs [][]T, pos int) int {
	first := seqs[0]
	l := len(first) - pos
	for _, s := range seqs[1:] {
		if m := len(s) - pos; m < l {
			l = m
		}
	}
	for i := 0; i < l; i++ {
		tok := first[pos+i]
		for _, s := range seqs[1:] {
			if s[pos+i] != tok {
				return i
			}
		}
	}
	return l
}

// followerCount counts the distinct continuations at offset p: each
// distinct token counts once, and "sequence ends here" counts as one
// more.
func followerCount[T cmp.Ordered](seqs [][]T, p int) int {
	seen := make(map[T]struct{})
	ends := false
	for _, s := range seqs {
		if len(s) == p {
			ends = true
		} else {
			seen[s[p]] = struct{}{}
		}
	}
	n := len(seen)
	if ends {
		n++
	}
	return n
}

// divergentGroups computes a segment-until-divergence for each sequence
// and groups sequences by the resulting segment. Used when the
// sequences share a prefix but diverge after it: a single absorbing
// edge would hide the branch point.
func divergentGroups[T cmp.Ordered](seqs [][]T, pos int) []segGroup[T] {
	var groups []segGroup[T]
next:
	for _, s := range seqs {
		seg := segmentUntilDivergence(s, pos, seqs)
		for i := range groups {
			if slices.Equal(groups[i].label, seg) {
				groups[i].seqs = append(groups[i].seqs, s)
				continue next
			}
		}
		groups = append(groups, segGroup[T]{label: seg, seqs: [][]T{s}})
	}
	return groups
}

// segmentUntilDivergence extends the segment for s token by token from
// pos until a boundary: either at most one sequence in the candidate
// set still shares the segment, or the sharers disagree about what
// follows it (a sequence ending counts as disagreement with one that
// continues).
func segmentUntilDivergence[T cmp.Ordered](s []T, pos int, all [][]T) []T {
	k := 1
	for {
		end := pos + k
		seg := s[pos:end]
		sharers := sharersOf(all, pos, seg)
		if len(sharers) <= 1 {
			break
		}
		if !agreeOnNext(sharers, end) {
			break
		}
		if end == len(s) {
			// s and every sharer end exactly here: nothing to extend.
			break
		}
		k++
	}
	return slices.Clone(s[pos : pos+k])
}

// sharersOf returns the sequences carrying seg at offset pos.
func sharersOf[T cmp.Ordered](seqs [][]T, pos int, seg []T) [][]T {
	var out [][]T
	for _, s := range seqs {
		if len(s) >= pos+len(seg) && slices.Equal(s[pos:pos+len(seg)], seg) {
			out = append(out, s)
		}
	}
	return out
}

// agreeOnNext reports whether all sequences continue identically at
// offset p: either all end there, or all carry the same token.
func agreeOnNext[T cmp.Ordered](seqs [][]T, p int) bool {
	if len(seqs) == 0 {
		return true
	}
	firstEnds := len(seqs[0]) == p
	for _, s := range seqs[1:] {
		if (len(s) == p) != firstEnds {
			return false
		}
		if !firstEnds && s[p] != seqs[0][p] {
			return false
		}
	}
	return true
}

// firstTokenGroups groups sequences by their token at pos, then
// extends each group's segment greedily while every member still
// shares it. Used when there is no common prefix at all.
func firstTokenGroups[T cmp.Ordered](seqs [][]T, pos int) []segGroup[T] {
	byTok := make(map[T][][]T)
	var order []T
	for _, s := range seqs {
		tok := s[pos]
		if _, ok := byTok[tok]; !ok {
			order = append(order, tok)
		}
		byTok[tok] = append(byTok[tok], s)
	}
	slices.Sort(order)

	groups := make([]segGroup[T], 0, len(order))
	for _, tok := range order {
		group := byTok[tok]
		k := optimalSegmentLen(group, pos)
		groups = append(groups, segGroup[T]{
			label: slices.Clone(group[0][pos : pos+k]),
			seqs:  group,
		})
	}
	return groups
}

// optimalSegmentLen extends the segment one token at a time while every
// sequence in the group shares it, stopping where continuing would not
// be shared by all members (a member ending counts as not sharing).
func optimalSegmentLen[T cmp.Ordered](group [][]T, pos int) int {
	k := 1
	for sharedTokenAt(group, pos+k) {
		k++
	}
	return k
}

// sharedTokenAt reports whether every sequence carries the same token
// at offset p.
func sharedTokenAt[T cmp.Ordered](group [][]T, p int) bool {
	if len(group[0]) <= p {
		return false
	}
	tok := group[0][p]
	for _, s := range group[1:] {
		if len(s) <= p || s[p] != tok {
			return false
		}
	}
	return true
}
