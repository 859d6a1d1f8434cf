package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohamadzoh/phonelib/internal/logger"
	"github.com/mohamadzoh/phonelib/pkg/extract"
)

var (
	extractHint      string
	extractValidOnly bool
	extractRedact    int
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Find phone numbers in free-form text",
	Long: "Find phone numbers in the given text, or in stdin when no " +
		"argument is passed. With --redact the text is echoed back with " +
		"numbers masked instead of listed.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}

		if extractRedact >= 0 {
			fmt.Fprint(cmd.OutOrStdout(), scanner.Redact(text, extractRedact))
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		}

		var candidates []extract.Candidate
		if extractHint != "" {
			candidates = scanner.WithCountryHint(text, extractHint)
		} else {
			candidates = scanner.All(text)
		}
		logger.Log.Debug("scanned text",
			zap.Int("bytes", len(text)),
			zap.Int("candidates", len(candidates)),
		)

		for _, c := range candidates {
			if extractValidOnly && !c.Valid {
				continue
			}
			norm := c.Normalized
			if !c.Valid {
				norm = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%s\n", c.Start, c.End, c.Raw, norm)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractHint, "hint", "", "territory code assumed for numbers without a country code")
	extractCmd.Flags().BoolVar(&extractValidOnly, "valid-only", false, "only report numbers that validate")
	extractCmd.Flags().IntVar(&extractRedact, "redact", -1, "mask numbers, keeping this many trailing digits (0 hides all)")
}
