// Package main provides the openpretext-strategies binary entry point.
// It validates a directory of strategy documents and reports findings
// per file, across files, and in summary; the exit status signals the
// overall outcome.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	json "github.com/goccy/go-json"

	strategies "github.com/shandley/openpretext-strategies"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "openpretext-strategies"
)

// defaultDir is the conventional catalog location a bare invocation targets.
const defaultDir = "strategies"

func main() {
	if err := rootCmd().Execute(); err != nil {
		// A failed validation already printed its report; anything else gets
		// one line on stderr.
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		flagVals   settings
	)

	cmd := &cobra.Command{
		Use:   appName + " [dir]",
		Short: "Validate the OpenPretext strategy catalog",
		Long: `Validates a directory of strategy documents: per-document schema and
filename checks, cross-document id uniqueness, and a pass/fail summary.

With no argument the conventional catalog directory "strategies" is used.
Exit status is 0 when every document passed and ids are unique, 1 otherwise.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logLevel)

			s, err := loadSettings(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			applyFlagOverrides(&s, cmd, flagVals)
			if err := s.validate(); err != nil {
				return err
			}

			dir := defaultDir
			if len(args) == 1 {
				dir = args[0]
			}
			return runValidate(cmd.OutOrStdout(), dir, s)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file path (YAML; default "+defaultConfigPath+" when present)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flagVals.Format, "format", "text", "Report format (text, json)")
	cmd.Flags().StringVar(&flagVals.Lang, "lang", "en", "Diagnostic language (en, ja)")
	cmd.Flags().BoolVar(&flagVals.FailFast, "fail-fast", false, "Stop each document's field checks at the first finding")
	cmd.Flags().StringVar(&flagVals.DuplicateKeys, "duplicate-keys", "warn", "Duplicated JSON keys (warn, error, ignore)")
	cmd.Flags().Int64Var(&flagVals.MaxBytes, "max-bytes", strategies.DefaultMaxBytes, "Per-document size cap in bytes (0 disables)")
	cmd.Flags().IntVar(&flagVals.MaxDepth, "max-depth", strategies.DefaultMaxDepth, "Per-document nesting cap (0 disables)")

	cmd.AddCommand(schemaCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func schemaCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the strategy document JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strategies.DocumentJSONSchema()
			if asYAML {
				data, err := yaml.Marshal(s)
				if err != nil {
					return fmt.Errorf("marshal schema: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Render the schema as YAML instead of JSON")
	return cmd
}
