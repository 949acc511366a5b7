package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inodb/trinuc/internal/trinuc"
)

type flushWriter interface {
	io.Writer
	Flush() error
}

// ResultWriter writes per-mutation outcomes in input order.
type ResultWriter struct {
	w          flushWriter
	errorsOnly bool // if true, only failed mutations are written
	total      int
	succeeded  int
	failed     int
	counted    int

	// failures by kind
	malformed  int
	outOfRange int
	mismatched int
}

// NewResultWriter creates a writer for mutation outcomes. Columns are
// aligned when pretty is set, otherwise separated by single tabs.
func NewResultWriter(w io.Writer, pretty, errorsOnly bool) *ResultWriter {
	var fw flushWriter = bufio.NewWriter(w)
	if pretty {
		fw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	}
	return &ResultWriter{w: fw, errorsOnly: errorsOnly}
}

// WriteHeader writes the header line.
func (rw *ResultWriter) WriteHeader() error {
	_, err := fmt.Fprintln(rw.w, "#Mutation\tStatus\tContext\tMessage")
	return err
}

// Write writes a single outcome.
func (rw *ResultWriter) Write(o trinuc.Outcome) error {
	rw.total++

	if !o.OK() {
		rw.failed++
		switch {
		case errors.Is(o.Err, trinuc.ErrMalformedToken):
			rw.malformed++
		case errors.Is(o.Err, trinuc.ErrPositionOutOfRange):
			rw.outOfRange++
		case errors.Is(o.Err, trinuc.ErrReferenceMismatch):
			rw.mismatched++
		}
		_, err := fmt.Fprintf(rw.w, "%s\tERROR\t-\t%s\n", o.Token, o.Err.Message)
		return err
	}

	rw.succeeded++
	message := "-"
	if o.Context.IsCanonical() {
		rw.counted++
	} else {
		message = "not counted"
	}

	if rw.errorsOnly {
		return nil
	}
	_, err := fmt.Fprintf(rw.w, "%s\tOK\t%s\t%s\n", o.Token, o.Context.Notation, message)
	return err
}

// WriteAll writes the header followed by every outcome of res.
func (rw *ResultWriter) WriteAll(res *trinuc.Result) error {
	if err := rw.WriteHeader(); err != nil {
		return err
	}
	for _, o := range res.Outcomes {
		if err := rw.Write(o); err != nil {
			return err
		}
	}
	return rw.Flush()
}

// Flush flushes the writer.
func (rw *ResultWriter) Flush() error {
	return rw.w.Flush()
}

// Summary returns outcome statistics.
func (rw *ResultWriter) Summary() (total, succeeded, failed, counted int) {
	return rw.total, rw.succeeded, rw.failed, rw.counted
}

// WriteSummary writes a summary of the written outcomes.
func (rw *ResultWriter) WriteSummary(w io.Writer, sequenceLength int) {
	okRate, errRate := float64(0), float64(0)
	if rw.total > 0 {
		okRate = float64(rw.succeeded) / float64(rw.total) * 100
		errRate = 100 - okRate
	}
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Sequence length: %d\n", sequenceLength)
	fmt.Fprintf(w, "  Mutations:       %d\n", rw.total)
	fmt.Fprintf(w, "  Contextualised:  %d (%.1f%%)\n", rw.succeeded, okRate)
	fmt.Fprintf(w, "  Errors:          %d (%.1f%%)\n", rw.failed, errRate)
	if rw.failed > 0 {
		fmt.Fprintf(w, "    malformed:     %d\n", rw.malformed)
		fmt.Fprintf(w, "    out of range:  %d\n", rw.outOfRange)
		fmt.Fprintf(w, "    mismatch:      %d\n", rw.mismatched)
	}
	fmt.Fprintf(w, "  Counted:         %d\n", rw.counted)
}
