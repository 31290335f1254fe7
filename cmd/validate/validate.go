// Package validate handles the structural-validation-only command
package validate

import (
	"fmt"

	"fjacquet/edi-analyze/cmd/root"
	"fjacquet/edi-analyze/internal/ediparser"
	"fjacquet/edi-analyze/internal/fileutils"
	"fjacquet/edi-analyze/internal/parsererror"
	"fjacquet/edi-analyze/internal/validation"
	"fjacquet/edi-analyze/internal/validator"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the structure of an EDI file",
	Long: `Validate tokenizes and parses an EDIFACT interchange and reports the
structural findings without running the full analysis. The command
fails when structural errors are present.`,
	RunE: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	if err := validation.IsValidPath(input); err != nil {
		return err
	}

	ok, err := ediparser.ValidateFormat(input)
	if err != nil {
		return err
	}
	if !ok {
		return &parsererror.InvalidFormatError{FilePath: input, Msg: "no UNA or UNB header found"}
	}

	raw, err := fileutils.ReadFileAsString(input)
	if err != nil {
		return err
	}

	segments, _ := ediparser.ParseDocument(raw)
	result := validator.Validate(segments)

	for _, issue := range result.Issues {
		fmt.Printf("[%s] %s %s: %s\n", issue.Severity, issue.Code, issue.Segment, issue.Message)
	}
	fmt.Printf("%d segments, %d errors, %d warnings\n", len(segments), result.ErrorCount, result.WarningCount)

	if !result.IsValid() {
		return fmt.Errorf("document has %d structural errors", result.ErrorCount)
	}
	root.Log.Info("Document is structurally valid")
	return nil
}
