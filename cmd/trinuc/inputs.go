package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/trinuc/internal/duckdb"
	"github.com/inodb/trinuc/internal/fasta"
	"github.com/inodb/trinuc/internal/trinuc"
	"github.com/inodb/trinuc/internal/vcf"
)

// inputOptions holds the flags shared by commands that evaluate mutations.
type inputOptions struct {
	sequencePath  string
	sequenceText  string
	mutations     string
	mutationsPath string
	vcfOpts       vcf.TokenOptions
}

func (o *inputOptions) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.sequencePath, "sequence", "s", "", "Reference FASTA or plain sequence file ('-' for stdin, .gz supported)")
	fs.StringVar(&o.sequenceText, "sequence-text", "", "Reference sequence given inline")
	fs.StringVarP(&o.mutations, "mutations", "m", "", "Comma-separated mutations, e.g. G3C,A1T")
	fs.StringVar(&o.mutationsPath, "mutations-file", "", "File of mutations, comma- or newline-separated, or a VCF ('-' for stdin)")
	fs.StringVar(&o.vcfOpts.Chrom, "chrom", "", "VCF input: only use records on this chromosome; the reference must then be that single contig")
	fs.BoolVar(&o.vcfOpts.PassOnly, "pass-only", false, "VCF input: only use records with FILTER PASS or '.'")
	fs.String("cache", "", "DuckDB file used to cache results (default: none)")
}

// bindFlags binds flags to config keys. Several commands define the same
// flag, so binding happens when a command runs rather than when it is built.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// load reads both inputs as raw text.
func (o *inputOptions) load(cmd *cobra.Command) (sequenceText, mutationsText string, err error) {
	switch {
	case o.sequencePath != "" && o.sequenceText != "":
		return "", "", usagef(cmd, "--sequence and --sequence-text are mutually exclusive")
	case o.sequencePath == "" && o.sequenceText == "":
		return "", "", usagef(cmd, "a reference is required (--sequence or --sequence-text)")
	case o.mutations != "" && o.mutationsPath != "":
		return "", "", usagef(cmd, "--mutations and --mutations-file are mutually exclusive")
	case o.mutations == "" && o.mutationsPath == "":
		return "", "", usagef(cmd, "mutations are required (--mutations or --mutations-file)")
	case o.sequencePath == fasta.Stdin && o.mutationsPath == fasta.Stdin:
		return "", "", usagef(cmd, "only one input can be read from stdin")
	}

	sequenceText = o.sequenceText
	if o.sequencePath != "" {
		if sequenceText, err = fasta.ReadText(o.sequencePath); err != nil {
			return "", "", fmt.Errorf("reading reference: %w", err)
		}
	}

	if o.vcfOpts.Chrom != "" && headerCount(sequenceText) > 1 {
		fmt.Fprintf(os.Stderr, "Warning: --chrom %s selects VCF records, but the reference has several records and they are concatenated\n", o.vcfOpts.Chrom)
	}

	mutationsText = o.mutations
	if o.mutationsPath != "" {
		if mutationsText, err = o.readMutationsFile(); err != nil {
			return "", "", fmt.Errorf("reading mutations: %w", err)
		}
	}

	return sequenceText, mutationsText, nil
}

// headerCount returns the number of FASTA header lines in text.
func headerCount(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			n++
		}
	}
	return n
}

// readMutationsFile reads a mutation list, converting VCF records to tokens
// when the file is a VCF by name or by content.
func (o *inputOptions) readMutationsFile() (string, error) {
	if vcf.LooksLikeVCF(o.mutationsPath, "") {
		p, err := vcf.NewParser(o.mutationsPath)
		if err != nil {
			return "", err
		}
		defer p.Close()
		return o.vcfTokens(p)
	}

	text, err := fasta.ReadText(o.mutationsPath)
	if err != nil {
		return "", err
	}
	if !vcf.LooksLikeVCF("", text) {
		return fasta.JoinLines(text), nil
	}

	p, err := vcf.NewParserFromReader(strings.NewReader(text))
	if err != nil {
		return "", err
	}
	return o.vcfTokens(p)
}

func (o *inputOptions) vcfTokens(p *vcf.Parser) (string, error) {
	tokens, err := vcf.Tokens(p, o.vcfOpts)
	if err != nil {
		return "", err
	}
	logger.Debug("read mutations from VCF",
		zap.String("path", o.mutationsPath),
		zap.Int("lines", p.LineNumber()),
		zap.Int("tokens", len(tokens)))
	return strings.Join(tokens, ","), nil
}

// evaluate loads the inputs and runs them through an aggregator, using the
// configured DuckDB cache if any.
func (o *inputOptions) evaluate(cmd *cobra.Command) (*trinuc.Result, error) {
	if err := bindFlags(cmd, map[string]string{cachePathKey: "cache"}); err != nil {
		return nil, err
	}

	sequenceText, mutationsText, err := o.load(cmd)
	if err != nil {
		return nil, err
	}

	var cache trinuc.ResultCache
	if path := viper.GetString(cachePathKey); path != "" {
		store, err := duckdb.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()
		cache = store
		logger.Debug("using result cache")
	}

	agg := trinuc.NewAggregator(cache)
	agg.SetLogger(logger)

	res, err := agg.Run(sequenceText, mutationsText)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(os.Stderr, "Parsed sequence length: %d\n", len(res.Sequence))
	if res.Sequence == "" {
		fmt.Fprintf(os.Stderr, "Warning: reference sequence is empty, no mutations evaluated\n")
	}
	return res, nil
}

// createOutput returns stdout for an empty path or "-", otherwise a new file.
func createOutput(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
