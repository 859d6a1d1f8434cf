package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohamadzoh/phonelib/internal/logger"
	"github.com/mohamadzoh/phonelib/pkg/extract"
	"github.com/mohamadzoh/phonelib/pkg/phone"
)

var (
	registryPath string
	logLevel     string

	// reg and scanner are bound once in the root PersistentPreRunE and
	// shared by every subcommand.
	reg     *phone.Registry
	scanner *extract.Scanner

	rootCmd = &cobra.Command{
		Use:           "phonecli",
		Short:         "Validate, normalise and extract phone numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(logLevel)

			if registryPath == "" {
				reg = phone.DefaultRegistry()
			} else {
				loaded, err := loadRegistry(registryPath)
				if err != nil {
					return fmt.Errorf("load registry: %w", err)
				}
				reg = loaded
				logger.Log.Info("using custom registry",
					zap.String("path", registryPath),
					zap.Int("countries", len(reg.Countries())),
				)
			}
			scanner = extract.New(reg)
			return nil
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "path to a YAML country table overriding the built-in one")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(randomCmd)
}
