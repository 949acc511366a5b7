package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadText(t *testing.T) {
	path := writeFile(t, "ref.fa", ">seq1\nACGT\nACGT\n")

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, ">seq1\nACGT\nACGT\n", text)
}

func TestReadText_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.fa.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">seq1\nACGTACGTAC\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, ">seq1\nACGTACGTAC\n", text)
}

func TestReadText_BadGzip(t *testing.T) {
	path := writeFile(t, "ref.fa.gz", "not gzip")

	_, err := ReadText(path)
	assert.Error(t, err)
}

func TestReadText_Missing(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.fa"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadText_Stdin(t *testing.T) {
	orig := stdin
	t.Cleanup(func() { stdin = orig })
	stdin = strings.NewReader("ACGT")

	text, err := ReadText(Stdin)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", text)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "G3C", JoinLines("G3C"))
	assert.Equal(t, "G3C,A1T", JoinLines("G3C\nA1T\n"))
	assert.Equal(t, "", JoinLines("\n# nothing\n"))
	assert.Equal(t, "G3C,A1T, G5C,X1T", JoinLines("# header\nG3C\n\nA1T, G5C\r\n  X1T  \n"))
}
