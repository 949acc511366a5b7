// Package main provides the trinuc command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is configured by the root command before any subcommand runs.
var logger = zap.NewNop()

// usageError marks errors caused by invalid command-line usage.
type usageError struct {
	cmd string
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(cmd *cobra.Command, format string, args ...any) error {
	return &usageError{cmd: cmd.CommandPath(), msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	logger.Sync() //nolint:errcheck
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(os.Stderr, "Hint: run '%s --help' for usage\n", ue.cmd)
		return ExitUsage
	}
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Hint: Check that the file path is correct\n")
	}
	return ExitError
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
		logFile string
	)

	root := &cobra.Command{
		Use:   "trinuc",
		Short: "Trinucleotide context of point mutations",
		Long: `trinuc places point mutations in their trinucleotide context against a
reference sequence and counts them over the 192 strand-aware
substitution contexts.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cfgFile); err != nil {
				return err
			}
			l, err := newLogger(logFile, verbose)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = l
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usagef(cmd, "%v", err)
	})

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.trinuc.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotating file instead of stderr")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSpectrumCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads the config file and environment overrides into viper.
func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".trinuc")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TRINUC")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
