package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohamadzoh/phonelib/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <number>...",
	Short: "Check whether numbers are valid",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, raw := range args {
			ok := reg.IsValid(raw)
			logger.Log.Debug("validated", zap.String("input", raw), zap.Bool("valid", ok))
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tvalid\n", raw)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\n", raw)
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d numbers invalid", invalid, len(args))
		}
		return nil
	},
}
