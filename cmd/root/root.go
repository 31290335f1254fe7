// Package root contains the root command for the application
package root

import (
	"fjacquet/edi-analyze/internal/config"
	"fjacquet/edi-analyze/internal/ediparser"
	"fjacquet/edi-analyze/internal/fileutils"
	"fjacquet/edi-analyze/internal/store"
	"fjacquet/edi-analyze/internal/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "edi-analyze",
		Short: "A CLI tool to parse, validate and analyze EDIFACT interchanges.",
		Long: `edi-analyze parses legacy EDI wire-format documents and produces a
structured analysis: parsed segments, extracted business entities,
structural validation results and a compressed context summary.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to edi-analyze!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all engine packages
			ediparser.SetLogger(Log)
			validator.SetLogger(Log)
			store.SetLogger(Log)
			fileutils.SetLogger(Log)
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input EDI file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output report file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format (json, yaml, csv)")
}
