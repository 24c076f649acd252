// Package corpus loads token sequences from line-oriented text.
//
// Each non-blank line is one sequence. Three tokenization modes cover
// the concrete token types the pipeline is used with: characters,
// whitespace-separated words, and whitespace-separated integers.
// Files ending in .gz are decompressed transparently.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Mode selects how a line is tokenized.
type Mode int

const (
	ModeChars Mode = iota // each character is a token
	ModeWords             // each whitespace-separated field is a token
	ModeInts              // each field must parse as an integer
)

func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeInts:
		return "ints"
	default:
		return "chars"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "chars":
		return ModeChars, nil
	case "words":
		return ModeWords, nil
	case "ints":
		return ModeInts, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want chars, words or ints)", s)
}

// Chars reads one rune sequence per non-blank line.
func Chars(r io.Reader) ([][]rune, error) {
	var seqs [][]rune
	err := eachLine(r, func(_ int, line string) error {
		seqs = append(seqs, []rune(line))
		return nil
	})
	return seqs, err
}

// Words reads one word sequence per non-blank line, splitting on
// whitespace.
func Words(r io.Reader) ([][]string, error) {
	var seqs [][]string
	err := eachLine(r, func(_ int, line string) error {
		seqs = append(seqs, strings.Fields(line))
		return nil
	})
	return seqs, err
}

// Ints reads one integer sequence per non-blank line, splitting on
// whitespace.
func Ints(r io.Reader) ([][]int, error) {
	var seqs [][]int
	err := eachLine(r, func(n int, line string) error {
		fields := strings.Fields(line)
		seq := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("line %d: invalid integer %q", n, f)
			}
			seq[i] = v
		}
		seqs = append(seqs, seq)
		return nil
	})
	return seqs, err
}

// eachLine calls fn for every non-blank line with its 1-based number.
func eachLine(r io.Reader, fn func(int, string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Open opens a corpus file for reading, decompressing .gz files
// transparently. The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &gzFile{zr: zr, f: f}, nil
}

// gzFile closes both the decompressor and the underlying file.
type gzFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzFile) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzFile) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
