// Package output provides formatters for contextualised mutations and
// context count tables.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/trinuc/internal/trinuc"
)

// TSVHeader is the header line of the count table.
const TSVHeader = "Context\tCount"

// RenderTSV renders counts as a two-column table with one row per catalog
// context, in catalog order. Rows are newline-joined without a trailing
// newline. Contexts missing from counts render as 0.
func RenderTSV(counts trinuc.CountTable) string {
	contexts := trinuc.AllContexts()
	lines := make([]string, 0, len(contexts)+1)
	lines = append(lines, TSVHeader)
	for _, c := range contexts {
		lines = append(lines, c+"\t"+strconv.Itoa(counts[c]))
	}
	return strings.Join(lines, "\n")
}

// TSVWriter writes count tables in tab-delimited format, one line per row
// including the last.
type TSVWriter struct {
	w *bufio.Writer
}

// NewTSVWriter creates a new count table writer.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (tw *TSVWriter) WriteHeader() error {
	_, err := tw.w.WriteString(TSVHeader + "\n")
	return err
}

// WriteCounts writes every catalog context with its count.
func (tw *TSVWriter) WriteCounts(counts trinuc.CountTable) error {
	for _, c := range trinuc.AllContexts() {
		if _, err := tw.w.WriteString(c + "\t" + strconv.Itoa(counts[c]) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TSVWriter) Flush() error {
	return tw.w.Flush()
}
