// Package analyze handles the single-file analysis command
package analyze

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/edi-analyze/cmd/root"
	"fjacquet/edi-analyze/internal/analyzer"
	"fjacquet/edi-analyze/internal/config"
	"fjacquet/edi-analyze/internal/ediparser"
	"fjacquet/edi-analyze/internal/fileutils"
	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/progress"
	"fjacquet/edi-analyze/internal/report"
	"fjacquet/edi-analyze/internal/store"
	"fjacquet/edi-analyze/internal/validation"

	"github.com/spf13/cobra"
)

var (
	saveAnalysis bool
	subsetHint   string
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one EDI file",
	Long: `Analyze parses an EDIFACT interchange, validates its structure,
extracts business entities and writes the analysis report.`,
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().BoolVar(&saveAnalysis, "save", false, "Persist the analysis in the local store")
	Cmd.Flags().StringVar(&subsetHint, "subset", "", "Subset hint passed to compliance inference")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	if err := validation.IsValidPath(input); err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	format := root.SharedFlags.Format
	if format == "" {
		format = cfg.Report.Format
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}

	if ok, ferr := ediparser.ValidateFormat(input); ferr == nil && !ok {
		root.Log.WithField("file", input).Warning("File does not start with UNA/UNB, analyzing anyway")
	}

	raw, err := fileutils.ReadFileAsString(input)
	if err != nil {
		return err
	}
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("error reading file metadata: %w", err)
	}

	eng := analyzer.NewWithLimits(analyzer.Limits{
		MaxSegmentDetails: cfg.Analyzer.MaxSegmentDetails,
		PreviewSize:       cfg.Analyzer.PreviewSize,
		MaxContextParties: cfg.Analyzer.MaxContextParties,
		MaxContextIssues:  cfg.Analyzer.MaxContextIssues,
	})
	eng.SetLogger(root.Log)
	eng.SetReporter(progress.NewLogReporter(root.Log))

	analysis, err := eng.Analyze(raw,
		models.FileInfo{Name: filepath.Base(input), Size: info.Size()},
		models.UserContext{Subset: subsetHint},
	)
	if err != nil {
		return err
	}

	generator := report.NewGenerator(nil)
	data, err := generator.Generate(analysis, format)
	if err != nil {
		return err
	}

	if output := root.SharedFlags.Output; output != "" {
		if err := fileutils.WriteFile(output, data); err != nil {
			return err
		}
		root.Log.WithField("file", output).Info("Report written")
	} else {
		fmt.Println(string(data))
	}

	if saveAnalysis {
		st := store.NewAnalysisStore(cfg.Store.Directory)
		id, err := st.Save(analysis)
		if err != nil {
			return err
		}
		root.Log.WithField("id", id).Info("Analysis saved")
	}

	root.Log.Info(analysis.Summary)
	return nil
}
