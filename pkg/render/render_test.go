package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/abstrie/pkg/abstract"
	"github.com/ha1tch/abstrie/pkg/render"
	"github.com/ha1tch/abstrie/pkg/trie"
)

func TestTreeChars(t *testing.T) {
	root := trie.BuildFromWords([]string{"cat", "car"})

	want := "" +
		"└── ca\n" +
		"    ├── r.\n" +
		"    └── t.\n"
	assert.Equal(t, want, render.Tree(root))
}

func TestTreeWords(t *testing.T) {
	root := trie.Build([][]string{
		{"the", "cat"},
		{"the", "dog"},
		{"a", "cat"},
	})

	cfg := render.Config{Separator: " ", Marker: "."}
	want := "" +
		"├── a cat.\n" +
		"└── the\n" +
		"    ├── cat.\n" +
		"    └── dog.\n"
	assert.Equal(t, want, render.TreeWith(root, cfg, render.Token[string]))
}

func TestTreeEmpty(t *testing.T) {
	assert.Equal(t, "", render.Tree(trie.Build[rune](nil)))
}

func TestTreeTerminalRoot(t *testing.T) {
	root := trie.Build([][]rune{{}})
	assert.Equal(t, ".\n", render.Tree(root))
}

func TestTreeCustomMarker(t *testing.T) {
	root := trie.BuildFromWords([]string{"ab"})
	cfg := render.Config{Separator: "-", Marker: "*"}

	assert.Equal(t, "└── a-b*\n", render.TreeWith(root, cfg, render.Token[rune]))
}

func TestGrouped(t *testing.T) {
	root := trie.BuildFromWords([]string{"cat", "car"})
	g := abstract.Transform(root)

	want := "" +
		"└── len=2 {ca}\n" +
		"    └── len=1 {r, t}.\n"
	assert.Equal(t, want, render.Grouped(g))
}

func TestGroupedInts(t *testing.T) {
	root := trie.Build([][]int{{1, 2}, {1, 3}, {2, 3}})
	g := abstract.Transform(root)

	cfg := render.Config{Separator: " ", Marker: "."}
	want := "" +
		"├── len=1 {1}\n" +
		"│   └── len=1 {2, 3}.\n" +
		"└── len=2 {2 3}.\n"
	assert.Equal(t, want, render.GroupedWith(g, cfg, render.Token[int]))
}

func TestGroupedEmpty(t *testing.T) {
	g := abstract.Transform(trie.Build[int](nil))
	assert.Equal(t, "", render.Grouped(g))
}

func TestBasicPathCompression(t *testing.T) {
	tr := trie.NewTrie[rune]()
	tr.Insert([]rune("cat"))
	tr.Insert([]rune("car"))

	want := "" +
		"└── ca\n" +
		"    ├── r.\n" +
		"    └── t.\n"
	assert.Equal(t, want, render.Basic(tr))
}

func TestBasicTerminalStopsCompression(t *testing.T) {
	tr := trie.NewTrie[rune]()
	tr.Insert([]rune("ab"))
	tr.Insert([]rune("abcd"))

	want := "" +
		"└── ab.\n" +
		"    └── cd.\n"
	assert.Equal(t, want, render.Basic(tr))
}

func TestTokenFormatter(t *testing.T) {
	assert.Equal(t, "a", render.Token[rune]('a'))
	assert.Equal(t, "7", render.Token[int](7))
	assert.Equal(t, "dog", render.Token[string]("dog"))
}
