package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamadzoh/phonelib/pkg/phone"
)

var formatStyle string

var formatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Render numbers in a display style",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := parseStyle(formatStyle)
		if err != nil {
			return err
		}
		for _, raw := range args {
			out, ok := reg.Format(raw, style)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\n", raw)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", raw, out)
		}
		return nil
	},
}

func parseStyle(s string) (phone.Style, error) {
	switch s {
	case "e164":
		return phone.E164, nil
	case "international":
		return phone.International, nil
	case "national":
		return phone.National, nil
	case "rfc3966":
		return phone.RFC3966, nil
	}
	return 0, fmt.Errorf("unknown style %q: want e164, international, national or rfc3966", s)
}

func init() {
	formatCmd.Flags().StringVar(&formatStyle, "style", "e164", "output style: e164, international, national, rfc3966")
}
