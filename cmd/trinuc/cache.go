package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/trinuc/internal/duckdb"
	"github.com/inodb/trinuc/internal/trinuc"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the result cache",
		Long:  "Inspect or clear the DuckDB result cache set by --cache or cache.path in ~/.trinuc.yaml.",
		Example: `  trinuc cache info --cache results.duckdb
  trinuc cache search "C[G>C]T"
  trinuc cache clear`,
	}

	cmd.PersistentFlags().String("cache", "", "DuckDB cache file (default: cache.path from config)")

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the number of cached runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(cmd, func(s *duckdb.Store) error {
				n, err := s.RunCount()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cached runs\n", s.Path(), n)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search <context>",
		Short: "List cached runs that counted a context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !trinuc.IsCanonical(args[0]) {
				return usagef(cmd, "%q is not one of the 192 canonical contexts", args[0])
			}
			return withCache(cmd, func(s *duckdb.Store) error {
				hits, err := s.SearchByContext(args[0])
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(hits))
				for k := range hits {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", k, hits[k])
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(cmd, func(s *duckdb.Store) error {
				if err := s.Clear(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", s.Path())
				return nil
			})
		},
	})

	return cmd
}

func withCache(cmd *cobra.Command, fn func(*duckdb.Store) error) error {
	if err := bindFlags(cmd, map[string]string{cachePathKey: "cache"}); err != nil {
		return err
	}
	path := viper.GetString(cachePathKey)
	if path == "" {
		return usagef(cmd, "no cache configured (use --cache or set cache.path)")
	}

	s, err := duckdb.Open(path)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer s.Close()

	return fn(s)
}
