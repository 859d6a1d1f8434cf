package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normalizeCountry string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <number>...",
	Short: "Print the canonical E.164 form of numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, raw := range args {
			var norm string
			var ok bool
			if normalizeCountry != "" {
				norm, ok = reg.NormalizeWithCountry(raw, normalizeCountry)
			} else {
				norm, ok = reg.Normalize(raw)
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\n", raw)
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", raw, norm)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d numbers could not be normalised", failed, len(args))
		}
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeCountry, "country", "", "territory code used to retry numbers dialled nationally")
}
