// Package render draws tries as indented text trees.
//
// The renderer is a read-only consumer: it walks the structures from
// package trie and package abstract in their deterministic edge order
// and produces box-drawing output. Display concerns (separators,
// terminal markers, token formatting) live here, not in the core.
package render

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/ha1tch/abstrie/pkg/abstract"
	"github.com/ha1tch/abstrie/pkg/trie"
)

// Config controls label formatting.
type Config struct {
	Separator string // joins the tokens of one segment label
	Marker    string // appended to terminal nodes
}

// Default returns the standard rendering configuration: no separator,
// "." as the terminal marker.
func Default() Config {
	return Config{Marker: "."}
}

// Formatter converts a single token to its display text.
type Formatter[T any] func(T) string

// Token is the default formatter. Runes print as characters rather
// than code points; everything else prints with fmt.Sprint.
func Token[T any](v T) string {
	if r, ok := any(v).(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}

// Tree renders a segmented trie with the default configuration.
func Tree[T cmp.Ordered](n *trie.Node[T]) string {
	return TreeWith(n, Default(), Token[T])
}

// TreeWith renders a segmented trie. The root itself produces a line
// only when it is terminal (the empty sequence was an input).
func TreeWith[T cmp.Ordered](n *trie.Node[T], cfg Config, format Formatter[T]) string {
	var b strings.Builder
	if n.Terminal() {
		b.WriteString(cfg.Marker)
		b.WriteString("\n")
	}
	writeEdges(&b, n, "", cfg, format)
	return b.String()
}

func writeEdges[T cmp.Ordered](b *strings.Builder, n *trie.Node[T], prefix string, cfg Config, format Formatter[T]) {
	edges := n.Edges()
	for i, e := range edges {
		branch, cont := "├── ", "│   "
		if i == len(edges)-1 {
			branch, cont = "└── ", "    "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(label(e.Label, cfg.Separator, format))
		if e.Child.Terminal() {
			b.WriteString(cfg.Marker)
		}
		b.WriteString("\n")
		writeEdges(b, e.Child, prefix+cont, cfg, format)
	}
}

// Grouped renders a length-grouped trie with the default configuration.
func Grouped[T cmp.Ordered](g *abstract.GroupedNode[T]) string {
	return GroupedWith(g, Default(), Token[T])
}

// GroupedWith renders a length-grouped trie. Each group prints as
// "len=N {segments}" with the folded segment labels in sorted order.
func GroupedWith[T cmp.Ordered](g *abstract.GroupedNode[T], cfg Config, format Formatter[T]) string {
	var b strings.Builder
	if g.Terminal() {
		b.WriteString(cfg.Marker)
		b.WriteString("\n")
	}
	writeGroups(&b, g, "", cfg, format)
	return b.String()
}

func writeGroups[T cmp.Ordered](b *strings.Builder, g *abstract.GroupedNode[T], prefix string, cfg Config, format Formatter[T]) {
	groups := g.Groups()
	for i, gr := range groups {
		branch, cont := "├── ", "│   "
		if i == len(groups)-1 {
			branch, cont = "└── ", "    "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(groupLabel(gr, cfg.Separator, format))
		if gr.Child.Terminal() {
			b.WriteString(cfg.Marker)
		}
		b.WriteString("\n")
		writeGroups(b, gr.Child, prefix+cont, cfg, format)
	}
}

// Basic renders a one-token-per-edge trie, compressing single-child
// non-terminal chains into one line the way long unique suffixes read
// naturally.
func Basic[T cmp.Ordered](t *trie.Trie[T]) string {
	return BasicWith(t, Default(), Token[T])
}

// BasicWith renders a basic trie with explicit configuration.
func BasicWith[T cmp.Ordered](t *trie.Trie[T], cfg Config, format Formatter[T]) string {
	var b strings.Builder
	if t.Terminal() {
		b.WriteString(cfg.Marker)
		b.WriteString("\n")
	}
	writeBasic(&b, t, "", cfg, format)
	return b.String()
}

func writeBasic[T cmp.Ordered](b *strings.Builder, t *trie.Trie[T], prefix string, cfg Config, format Formatter[T]) {
	toks := t.Children()
	for i, tok := range toks {
		branch, cont := "├── ", "│   "
		if i == len(toks)-1 {
			branch, cont = "└── ", "    "
		}
		child, _ := t.Child(tok)
		path := []T{tok}
		for len(child.Children()) == 1 && !child.Terminal() {
			next := child.Children()[0]
			path = append(path, next)
			child, _ = child.Child(next)
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(label(path, cfg.Separator, format))
		if child.Terminal() {
			b.WriteString(cfg.Marker)
		}
		b.WriteString("\n")
		writeBasic(b, child, prefix+cont, cfg, format)
	}
}

func label[T any](toks []T, sep string, format Formatter[T]) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = format(tok)
	}
	return strings.Join(parts, sep)
}

func groupLabel[T cmp.Ordered](gr abstract.Group[T], sep string, format Formatter[T]) string {
	parts := make([]string, len(gr.Segments))
	for i, seg := range gr.Segments {
		parts[i] = label(seg, sep, format)
	}
	return fmt.Sprintf("len=%d {%s}", gr.Length, strings.Join(parts, ", "))
}
