package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/trinuc/internal/output"
	"github.com/inodb/trinuc/internal/trinuc"
)

func newRunCmd() *cobra.Command {
	var (
		in         inputOptions
		outputFile string
		tsvFile    string
		errorsOnly bool
		summary    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Contextualise mutations and report each one",
		Long: `Contextualise each mutation against the reference and print one result per
mutation, in input order. Failed mutations are reported with the reason and
do not stop the batch.`,
		Example: `  trinuc run -s ref.fa -m G3C,A1T
  trinuc run --sequence-text ACGTACGTAC -m "G3C, G5C" --tsv counts.tsv
  trinuc run -s ref.fa.gz --mutations-file calls.txt -f table
  cat ref.fa | trinuc run -s - -m G3C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd, map[string]string{outputFormatKey: "format"}); err != nil {
				return err
			}

			res, err := in.evaluate(cmd)
			if err != nil {
				return err
			}

			out, closeOut, err := createOutput(outputFile)
			if err != nil {
				return err
			}
			defer closeOut() //nolint:errcheck

			switch format := viper.GetString(outputFormatKey); format {
			case "tab":
				w := output.NewResultWriter(out, false, errorsOnly)
				if err := w.WriteAll(res); err != nil {
					return fmt.Errorf("writing results: %w", err)
				}
				if summary {
					w.WriteSummary(os.Stderr, len(res.Sequence))
				}
			case "table":
				if _, err := fmt.Fprint(out, output.RenderResultTable(res)); err != nil {
					return fmt.Errorf("writing results: %w", err)
				}
			default:
				return usagef(cmd, "unknown output format %q (expected tab or table)", format)
			}

			if tsvFile != "" {
				if err := writeTSVFile(tsvFile, res.Counts); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Wrote context counts to %s\n", tsvFile)
			}

			return closeOut()
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringP("format", "f", "tab", "Output format: tab, table")
	cmd.Flags().StringVar(&tsvFile, "tsv", "", "Also write the 192-context count table to this file")
	cmd.Flags().BoolVar(&errorsOnly, "errors-only", false, "Only report mutations that failed")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a summary to stderr (tab format)")

	return cmd
}

func writeTSVFile(path string, counts trinuc.CountTable) error {
	f, closeF, err := createOutput(path)
	if err != nil {
		return err
	}
	defer closeF() //nolint:errcheck

	w := output.NewTSVWriter(f)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing count table: %w", err)
	}
	if err := w.WriteCounts(counts); err != nil {
		return fmt.Errorf("writing count table: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing count table: %w", err)
	}
	return closeF()
}
