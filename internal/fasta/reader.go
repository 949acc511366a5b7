// Package fasta reads reference sequence and mutation list text from
// files, gzip-compressed files or stdin.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// ReadText returns the full contents of path. Files ending in .gz are
// decompressed; Stdin reads standard input.
func ReadText(path string) (string, error) {
	if path == Stdin {
		return readAll(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return readAll(reader)
}

func readAll(r io.Reader) (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, bufio.NewReader(r)); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return sb.String(), nil
}

// JoinLines converts a mutation list into a single comma-separated batch.
// Tokens may be comma-separated, one per line, or both; lines starting
// with '#' are comments.
func JoinLines(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, ",")
}
