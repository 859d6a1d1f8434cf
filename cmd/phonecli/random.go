package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var randomCount int

var randomCmd = &cobra.Command{
	Use:   "random <country-code>",
	Short: "Generate random valid numbers for a territory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if randomCount < 1 {
			return fmt.Errorf("count must be at least 1")
		}
		numbers := reg.RandomN(args[0], randomCount)
		if len(numbers) == 0 {
			return fmt.Errorf("unknown country code %q", args[0])
		}
		for _, n := range numbers {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	randomCmd.Flags().IntVar(&randomCount, "count", 1, "how many numbers to generate")
}
