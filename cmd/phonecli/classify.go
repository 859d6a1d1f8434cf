package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <number>...",
	Short: "Show country and number type",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, raw := range args {
			analysis := reg.AnalyzeBatch([]string{raw})[0]
			if !analysis.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\n", raw)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s (%s)\t%s\n",
				raw,
				analysis.Normalized,
				analysis.Country.Name,
				analysis.Country.Code,
				analysis.Type,
			)
		}
		return nil
	},
}
