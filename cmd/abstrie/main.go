// Command abstrie builds a segmented trie over token sequences and
// prints it alongside its length-grouped abstraction.
//
// Usage:
//
//	abstrie [-m chars|words|ints] [-g=false] [file ...]
//	abstrie --demo
//	abstrie -i
//
// Each non-blank input line is one sequence; files ending in .gz are
// decompressed transparently. Without file arguments, sequences are
// read from standard input.
package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ha1tch/abstrie/pkg/abstract"
	"github.com/ha1tch/abstrie/pkg/corpus"
	"github.com/ha1tch/abstrie/pkg/render"
	"github.com/ha1tch/abstrie/pkg/trie"
)

var (
	modeFlag    = pflag.StringP("mode", "m", "chars", "tokenization mode: chars, words or ints")
	sepFlag     = pflag.StringP("separator", "s", "", "separator between tokens in a label (default: none for chars, space otherwise)")
	markerFlag  = pflag.String("marker", ".", "marker appended to terminal nodes")
	groupedFlag = pflag.BoolP("grouped", "g", true, "print the length-grouped abstraction")
	interactive = pflag.BoolP("interactive", "i", false, "start an interactive shell")
	demo        = pflag.Bool("demo", false, "print the built-in demonstration corpora")
	configPath  = pflag.StringP("config", "c", "", "config file (mode, separator, marker, grouped)")
	verbose     = pflag.BoolP("verbose", "v", false, "debug logging")
	help        = pflag.BoolP("help", "h", false, "display this help")
)

// settings is the resolved configuration: defaults, then config file,
// then flags.
type settings struct {
	Mode      corpus.Mode
	Separator string
	Marker    string
	Tree      bool
	Grouped   bool
}

func main() {
	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := load()
	if err != nil {
		fatal("%v", err)
	}
	log.Debug().
		Stringer("mode", cfg.Mode).
		Str("separator", cfg.Separator).
		Bool("grouped", cfg.Grouped).
		Msg("configuration resolved")

	switch {
	case *demo:
		runDemo(cfg)
	case *interactive:
		runShell(cfg)
	default:
		r, closeInput, err := input(pflag.Args())
		if err != nil {
			fatal("%v", err)
		}
		defer closeInput()

		out, err := report(cfg, r)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Print(out)
	}
}

// load resolves settings from defaults, the optional config file and
// the command line.
func load() (settings, error) {
	v := viper.New()
	v.SetDefault("mode", "chars")
	v.SetDefault("separator", "")
	v.SetDefault("marker", ".")
	v.SetDefault("grouped", true)

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("cannot read config: %w", err)
		}
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return settings{}, err
	}

	mode, err := corpus.ParseMode(v.GetString("mode"))
	if err != nil {
		return settings{}, err
	}

	sep := v.GetString("separator")
	if !pflag.CommandLine.Changed("separator") && !v.InConfig("separator") {
		sep = defaultSeparator(mode)
	}

	return settings{
		Mode:      mode,
		Separator: sep,
		Marker:    v.GetString("marker"),
		Tree:      true,
		Grouped:   v.GetBool("grouped"),
	}, nil
}

func defaultSeparator(mode corpus.Mode) string {
	if mode == corpus.ModeChars {
		return ""
	}
	return " "
}

// input concatenates the given corpus files, or falls back to stdin.
func input(paths []string) (io.Reader, func(), error) {
	if len(paths) == 0 {
		return os.Stdin, func() {}, nil
	}
	readers := make([]io.Reader, len(paths))
	closers := make([]io.Closer, len(paths))
	for i, path := range paths {
		rc, err := corpus.Open(path)
		if err != nil {
			for _, c := range closers[:i] {
				c.Close()
			}
			return nil, nil, fmt.Errorf("cannot open '%s': %w", path, err)
		}
		readers[i] = rc
		closers[i] = rc
	}
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	return io.MultiReader(readers...), closeAll, nil
}

// report parses the corpus in the configured mode and renders the
// requested trees.
func report(cfg settings, r io.Reader) (string, error) {
	switch cfg.Mode {
	case corpus.ModeWords:
		seqs, err := corpus.Words(r)
		if err != nil {
			return "", err
		}
		return describe(cfg, seqs), nil
	case corpus.ModeInts:
		seqs, err := corpus.Ints(r)
		if err != nil {
			return "", err
		}
		return describe(cfg, seqs), nil
	default:
		seqs, err := corpus.Chars(r)
		if err != nil {
			return "", err
		}
		return describe(cfg, seqs), nil
	}
}

// describe builds the segmented trie and renders it and, when
// configured, its length-grouped abstraction.
func describe[T cmp.Ordered](cfg settings, seqs [][]T) string {
	log.Debug().Int("sequences", len(seqs)).Msg("building segmented trie")
	root := trie.Build(seqs)
	log.Debug().Int("nodes", root.NodeCount()).Msg("segmented trie built")

	rc := render.Config{Separator: cfg.Separator, Marker: cfg.Marker}
	var b strings.Builder
	if cfg.Tree {
		b.WriteString("Segmented trie:\n")
		b.WriteString(render.TreeWith(root, rc, render.Token[T]))
	}
	if cfg.Grouped {
		g := abstract.Transform(root)
		log.Debug().Int("nodes", g.NodeCount()).Msg("length-grouped trie built")
		if cfg.Tree {
			b.WriteString("\n")
		}
		b.WriteString("Length-grouped trie:\n")
		b.WriteString(render.GroupedWith(g, rc, render.Token[T]))
	}
	return b.String()
}

// runDemo prints the three demonstration corpora: characters of a word
// list, word sentences, and integer paths.
func runDemo(cfg settings) {
	words := []string{"ape", "app", "application", "bans", "bat", "banner", "pot", "potion"}
	charSeqs := make([][]rune, len(words))
	for i, w := range words {
		charSeqs[i] = []rune(w)
	}
	charCfg := cfg
	charCfg.Mode = corpus.ModeChars
	charCfg.Separator = ""
	fmt.Printf("=== Character sequences %v ===\n", words)
	fmt.Print(describe(charCfg, charSeqs))

	sentences := [][]string{
		{"the", "dog", "ate", "choco"},
		{"the", "dog", "ate", "cookie"},
		{"the", "dog"},
		{"a", "big", "dog", "ate", "choco"},
		{"a", "cat"},
		{"a", "big", "dog", "ate", "cookie"},
	}
	wordCfg := cfg
	wordCfg.Mode = corpus.ModeWords
	wordCfg.Separator = " "
	fmt.Println("\n=== Word sequences ===")
	fmt.Print(describe(wordCfg, sentences))

	ints := [][]int{
		{1, 2},
		{1, 3},
		{1, 2, 4, 5},
		{2, 3},
		{2, 3, 4},
	}
	intCfg := cfg
	intCfg.Mode = corpus.ModeInts
	intCfg.Separator = " "
	fmt.Printf("\n=== Integer sequences %v ===\n", ints)
	fmt.Print(describe(intCfg, ints))
}

// runShell runs the interactive loop: sequences are accumulated with
// "add" and rendered on demand.
func runShell(cfg settings) {
	rl, err := readline.New("abstrie> ")
	if err != nil {
		fatal("cannot start shell: %v", err)
	}
	defer rl.Close()

	fmt.Printf("abstrie shell, %s mode. Type 'help' for commands.\n", cfg.Mode)
	var lines []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "":
		case "add":
			if strings.TrimSpace(rest) == "" {
				fmt.Println("usage: add <sequence>")
				continue
			}
			lines = append(lines, rest)
			fmt.Printf("%d sequence(s)\n", len(lines))
		case "tree", "grouped":
			c := cfg
			c.Tree = cmd == "tree"
			c.Grouped = cmd == "grouped"
			out, err := report(c, strings.NewReader(strings.Join(lines, "\n")))
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Print(out)
		case "clear":
			lines = nil
			fmt.Println("cleared")
		case "help":
			fmt.Print(shellHelp)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command '%s' (try 'help')\n", cmd)
		}
	}
}

const shellHelp = `Commands:
  add <sequence>   add one sequence (tokenized per the current mode)
  tree             print the segmented trie
  grouped          print the length-grouped trie
  clear            forget all sequences
  quit             leave the shell
`

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: abstrie [options] [file ...]

Build a segmented trie over token sequences and print it alongside its
length-grouped abstraction. Each non-blank input line is one sequence;
.gz files are decompressed transparently. Without file arguments,
sequences are read from standard input.

Options:
`)
	pflag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  abstrie words.txt                 Character sequences from a word list
  abstrie -m words sentences.txt    Word sequences
  abstrie -m ints -g=false paths    Integer sequences, segmented trie only
  abstrie --demo                    Built-in demonstration corpora
  abstrie -i -m words               Interactive shell in word mode
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "abstrie: "+format+"\n", args...)
	os.Exit(1)
}
