package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage trinuc configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.trinuc.yaml.",
		Example: `  trinuc config                                      # show effective settings
  trinuc config set cache.path ~/.trinuc/cache.duckdb  # enable the result cache
  trinuc config set output.format table              # aligned output for run
  trinuc config set log.max_size 50                  # rotate log files at 50 MB
  trinuc config get log.level`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: configKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfig(cmd, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !viper.IsSet(args[0]) {
				return fmt.Errorf("key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
			return nil
		},
	})

	return cmd
}

func showConfig(w io.Writer) error {
	if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
		fmt.Fprintf(w, "# %s\n", cfgFile)
	} else {
		fmt.Fprintln(w, "# No config file, showing defaults. Config file: ~/.trinuc.yaml")
	}

	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func setConfig(cmd *cobra.Command, key, raw string) error {
	parse, ok := configParsers[key]
	if !ok {
		return usagef(cmd, "unknown config key %q (known: %s)", key, strings.Join(configKeys(), ", "))
	}
	value, err := parse(raw)
	if err != nil {
		return usagef(cmd, "invalid value for %s: %v", key, err)
	}
	viper.Set(key, value)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".trinuc.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v in %s\n", key, value, cfgFile)
	return nil
}

// configParsers converts command-line text into the value stored for each
// settable key.
var configParsers = map[string]func(string) (any, error){
	outputFormatKey: func(s string) (any, error) {
		if s != "tab" && s != "table" {
			return nil, fmt.Errorf("%q is not tab or table", s)
		}
		return s, nil
	},
	cachePathKey:   parseString,
	logFilenameKey: parseString,
	logLevelKey: func(s string) (any, error) {
		l, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, err
		}
		return l.String(), nil
	},
	logMaxSizeKey:    parseCount,
	logMaxBackupsKey: parseCount,
	logMaxAgeKey:     parseCount,
	logCompressKey:   parseSwitch,
}

func configKeys() []string {
	keys := make([]string, 0, len(configParsers))
	for k := range configParsers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseString(s string) (any, error) {
	return s, nil
}

func parseCount(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return n, nil
}

func parseSwitch(s string) (any, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return nil, fmt.Errorf("%q is not a boolean", s)
}
