// Command benchmark measures segmented trie construction and
// length-grouped transformation across synthetic corpora.
//
// Usage:
//
//	benchmark [-sizes 100,1000,10000] [-seed 1] [-profile]
//
// Three corpus shapes are generated per size: random words over a small
// alphabet, words sharing a handful of common prefixes, and integer
// paths. For each, the tool reports build time, transform time and the
// node counts of both structures. -profile writes a CPU profile to the
// current directory.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/ha1tch/abstrie/pkg/abstract"
	"github.com/ha1tch/abstrie/pkg/trie"
)

type result struct {
	Corpus       string
	Sequences    int
	BuildTime    time.Duration
	Transform    time.Duration
	TrieNodes    int
	GroupedNodes int
}

func main() {
	sizesFlag := flag.String("sizes", "100,1000,10000", "comma-separated corpus sizes")
	seed := flag.Int64("seed", 1, "random seed for corpus generation")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	var sizes []int
	for _, s := range strings.Split(*sizesFlag, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "benchmark: invalid size: %s\n", s)
			os.Exit(1)
		}
		sizes = append(sizes, n)
	}
	sort.Ints(sizes)

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	rng := rand.New(rand.NewSource(*seed))

	var results []result
	for _, size := range sizes {
		results = append(results, measure("random-words", randomWords(rng, size)))
		results = append(results, measure("prefix-families", prefixFamilies(rng, size)))
		results = append(results, measure("int-paths", intPaths(rng, size)))
	}

	fmt.Printf("%-18s %10s %12s %12s %10s %10s\n",
		"corpus", "sequences", "build", "transform", "nodes", "grouped")
	for _, r := range results {
		fmt.Printf("%-18s %10d %12v %12v %10d %10d\n",
			r.Corpus, r.Sequences, r.BuildTime.Round(time.Microsecond),
			r.Transform.Round(time.Microsecond), r.TrieNodes, r.GroupedNodes)
	}
}

func measure[T interface{ rune | int }](name string, seqs [][]T) result {
	start := time.Now()
	root := trie.Build(seqs)
	buildTime := time.Since(start)

	start = time.Now()
	grouped := abstract.Transform(root)
	transformTime := time.Since(start)

	return result{
		Corpus:       name,
		Sequences:    len(seqs),
		BuildTime:    buildTime,
		Transform:    transformTime,
		TrieNodes:    root.NodeCount(),
		GroupedNodes: grouped.NodeCount(),
	}
}

// randomWords generates words of 3..12 letters over a 6-letter
// alphabet, which produces heavy accidental prefix sharing.
func randomWords(rng *rand.Rand, n int) [][]rune {
	const alphabet = "abcdef"
	seqs := make([][]rune, n)
	for i := range seqs {
		word := make([]rune, 3+rng.Intn(10))
		for j := range word {
			word[j] = rune(alphabet[rng.Intn(len(alphabet))])
		}
		seqs[i] = word
	}
	return seqs
}

// prefixFamilies generates words that extend a handful of fixed stems,
// so divergence points cluster right after the stems.
func prefixFamilies(rng *rand.Rand, n int) [][]rune {
	stems := []string{"app", "inter", "con", "trans", "pre"}
	const alphabet = "abcdefghij"
	seqs := make([][]rune, n)
	for i := range seqs {
		word := []rune(stems[rng.Intn(len(stems))])
		tail := 1 + rng.Intn(8)
		for j := 0; j < tail; j++ {
			word = append(word, rune(alphabet[rng.Intn(len(alphabet))]))
		}
		seqs[i] = word
	}
	return seqs
}

// intPaths generates short integer sequences over a small value range,
// mimicking event-id paths.
func intPaths(rng *rand.Rand, n int) [][]int {
	seqs := make([][]int, n)
	for i := range seqs {
		path := make([]int, 2+rng.Intn(6))
		for j := range path {
			path[j] = rng.Intn(10)
		}
		seqs[i] = path
	}
	return seqs
}
