// Package batch handles directory-level analysis
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/edi-analyze/cmd/root"
	"fjacquet/edi-analyze/internal/analyzer"
	"fjacquet/edi-analyze/internal/config"
	"fjacquet/edi-analyze/internal/fileutils"
	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze all EDI files in a directory",
	Long: `Batch analyzes every .edi and .txt file in the input directory and
writes one report per file to the output directory. Files that fail
are logged and skipped.`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Directory containing EDI files")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Directory for report files")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if root.InputDir == "" || root.OutputDir == "" {
		return fmt.Errorf("--input-dir and --output-dir are required")
	}

	processed, err := Analyze(root.InputDir, root.OutputDir)
	if err != nil {
		return err
	}
	root.Log.WithField("count", processed).Info("Batch analysis completed")
	return nil
}

// Analyze runs the analysis pipeline over every EDI file in inputDir
// and writes one report per file into outputDir. Per-file failures are
// logged and skipped; the processed count is returned.
func Analyze(inputDir, outputDir string) (int, error) {
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, err
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, ".edi", ".txt")
	if err != nil {
		return 0, err
	}

	cfg := config.GetGlobalConfig()
	eng := analyzer.NewWithLimits(analyzer.Limits{
		MaxSegmentDetails: cfg.Analyzer.MaxSegmentDetails,
		PreviewSize:       cfg.Analyzer.PreviewSize,
		MaxContextParties: cfg.Analyzer.MaxContextParties,
		MaxContextIssues:  cfg.Analyzer.MaxContextIssues,
	})
	eng.SetLogger(root.Log)
	generator := report.NewGenerator(nil)

	var processed int
	for _, file := range files {
		if err := analyzeOne(eng, generator, file, outputDir, cfg.Report.Format); err != nil {
			root.Log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Failed to analyze file, skipping")
			continue
		}
		processed++
	}
	return processed, nil
}

func analyzeOne(eng *analyzer.Analyzer, generator *report.Generator, file, outputDir, format string) error {
	raw, err := fileutils.ReadFileAsString(file)
	if err != nil {
		return err
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}

	analysis, err := eng.Analyze(raw,
		models.FileInfo{Name: filepath.Base(file), Size: info.Size()},
		models.UserContext{},
	)
	if err != nil {
		return err
	}

	data, err := generator.Generate(analysis, format)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return fileutils.WriteFile(filepath.Join(outputDir, base+"."+format), data)
}
