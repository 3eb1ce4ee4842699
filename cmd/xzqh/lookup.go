package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"xzqh/internal/config"
	"xzqh/internal/region"
	"xzqh/internal/store"
)

type datasetFlags struct {
	path string
	db   string
}

func (f *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "dataset", config.Default().Output, "Dataset JSON path")
	cmd.Flags().StringVar(&f.db, "db", "", "Read the dataset from a SQLite export instead of JSON")
}

func (f *datasetFlags) load(ctx context.Context) (region.Dataset, error) {
	if f.db == "" {
		return region.Load(f.path)
	}
	s, err := store.Open(ctx, f.db)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}

func newLookupCommand() *cobra.Command {
	var (
		year  int
		flags datasetFlags
	)
	cmd := &cobra.Command{
		Use:   "lookup <code>",
		Short: "Resolve a six-digit code to province, city and district",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}
			code := args[0]
			years := []int{year}
			if year == 0 {
				years = sortedYears(dataset)
			}

			out := cmd.OutOrStdout()
			found := false
			for _, y := range years {
				r := dataset.Lookup(y, code)
				if r.IsZero() {
					continue
				}
				found = true
				fmt.Fprintf(out, "%d\t%s\n", y, formatRegion(r))
			}
			if !found {
				return fmt.Errorf("code %s not found", code)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Only this year (default: every year with a match)")
	flags.register(cmd)
	return cmd
}

func formatRegion(r region.Region) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.Province, r.City, r.District} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// sortedYears returns the dataset's years, newest first.
func sortedYears(d region.Dataset) []int {
	years := slices.Sorted(maps.Keys(d))
	slices.Reverse(years)
	return years
}
