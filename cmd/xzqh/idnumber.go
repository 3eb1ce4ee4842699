package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xzqh/internal/idnumber"
)

func newIDNumberCommand() *cobra.Command {
	var flags datasetFlags
	cmd := &cobra.Command{
		Use:   "idnumber <id>",
		Short: "Decode sex, birthday and issuing region from a resident ID number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}
			id := strings.ToUpper(strings.TrimSpace(args[0]))
			parsed, err := idnumber.Parse(id, dataset)
			if err != nil {
				return fmt.Errorf("id number %s: %w", id, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sex\t%s\n", parsed.Sex)
			fmt.Fprintf(out, "birthday\t%s\n", parsed.Birthday.Format("2006-01-02"))
			fmt.Fprintf(out, "code\t%s\n", parsed.Code)
			if !parsed.Region.IsZero() {
				fmt.Fprintf(out, "region\t%s\n", formatRegion(parsed.Region))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
