package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/trinuc/internal/output"
	"github.com/inodb/trinuc/internal/trinuc"
)

func newSpectrumCmd() *cobra.Command {
	var (
		in         inputOptions
		outputFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Print the 192-context count table",
		Long: `Contextualise the mutations and print only the context count table: a
"Context<TAB>Count" header followed by all 192 contexts in catalog order.
Mutations that fail, sit at either end of the reference, or have identical
reference and alternate bases contribute nothing.`,
		Example: `  trinuc spectrum -s ref.fa -m G3C,A1T > counts.tsv
  trinuc spectrum -s ref.fa --mutations-file calls.txt -f table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := in.evaluate(cmd)
			if err != nil {
				return err
			}

			out, closeOut, err := createOutput(outputFile)
			if err != nil {
				return err
			}
			defer closeOut() //nolint:errcheck

			var text string
			switch format {
			case "tsv":
				text = output.RenderTSV(res.Counts) + "\n"
			case "table":
				text = output.RenderSpectrumTable(res.Counts)
			default:
				return usagef(cmd, "unknown output format %q (expected tsv or table)", format)
			}
			if _, err := fmt.Fprint(out, text); err != nil {
				return fmt.Errorf("writing count table: %w", err)
			}
			return closeOut()
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "tsv", "Output format: tsv, table")

	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the 192 canonical trinucleotide contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range trinuc.AllContexts() {
				if _, err := fmt.Fprintln(out, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
