package root_test

import (
	"testing"

	"fjacquet/edi-analyze/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "edi-analyze", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "parse, validate and analyze")
	assert.Contains(t, root.Cmd.Long, "EDI wire-format")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}
	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestInit_FlagBinding(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	if assert.NotNil(t, inputFlag) {
		assert.Equal(t, "i", inputFlag.Shorthand)
		assert.Equal(t, "", inputFlag.DefValue)
		assert.NotEmpty(t, inputFlag.Usage)
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}

	formatFlag := root.Cmd.PersistentFlags().Lookup("format")
	if assert.NotNil(t, formatFlag) {
		assert.Equal(t, "f", formatFlag.Shorthand)
	}
}

func TestSharedFlags_Access(t *testing.T) {
	originalInput := root.SharedFlags.Input
	originalOutput := root.SharedFlags.Output
	originalFormat := root.SharedFlags.Format
	defer func() {
		root.SharedFlags.Input = originalInput
		root.SharedFlags.Output = originalOutput
		root.SharedFlags.Format = originalFormat
	}()

	root.SharedFlags.Input = "modified.edi"
	root.SharedFlags.Output = "modified.json"
	root.SharedFlags.Format = "yaml"

	assert.Equal(t, "modified.edi", root.SharedFlags.Input)
	assert.Equal(t, "modified.json", root.SharedFlags.Output)
	assert.Equal(t, "yaml", root.SharedFlags.Format)
}

func TestCommonFlags_Structure(t *testing.T) {
	flags := root.CommonFlags{
		Input:  "test.edi",
		Output: "test.json",
		Format: "json",
	}

	assert.Equal(t, "test.edi", flags.Input)
	assert.Equal(t, "test.json", flags.Output)
	assert.Equal(t, "json", flags.Format)
}

func TestGlobalVariables_Initialization(t *testing.T) {
	assert.NotNil(t, root.Log)
	assert.NotNil(t, root.Cmd)
	assert.NotNil(t, &root.SharedFlags)
}
