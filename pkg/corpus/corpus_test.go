package corpus_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/abstrie/pkg/corpus"
)

func TestParseMode(t *testing.T) {
	for name, want := range map[string]corpus.Mode{
		"chars": corpus.ModeChars,
		"words": corpus.ModeWords,
		"ints":  corpus.ModeInts,
	} {
		got, err := corpus.ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := corpus.ParseMode("bytes")
	assert.Error(t, err)
}

func TestChars(t *testing.T) {
	seqs, err := corpus.Chars(strings.NewReader("cat\n\ncar\n"))
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, []rune("cat"), seqs[0])
	assert.Equal(t, []rune("car"), seqs[1])
}

func TestWords(t *testing.T) {
	seqs, err := corpus.Words(strings.NewReader("the  dog ate choco\na cat\n   \n"))
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, []string{"the", "dog", "ate", "choco"}, seqs[0])
	assert.Equal(t, []string{"a", "cat"}, seqs[1])
}

func TestInts(t *testing.T) {
	seqs, err := corpus.Ints(strings.NewReader("1 2\n1 3\n2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, seqs)
}

func TestIntsInvalid(t *testing.T) {
	_, err := corpus.Ints(strings.NewReader("1 2\n3 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ape\napp\n"), 0644))

	r, err := corpus.Open(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "ape\napp\n", string(data))
}

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("ape\napp\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "words.txt.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	r, err := corpus.Open(path)
	require.NoError(t, err)

	seqs, err := corpus.Chars(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Len(t, seqs, 2)
	assert.Equal(t, []rune("ape"), seqs[0])
}

func TestOpenMissing(t *testing.T) {
	_, err := corpus.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestOpenBadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0644))

	_, err := corpus.Open(path)
	assert.Error(t, err)
}
