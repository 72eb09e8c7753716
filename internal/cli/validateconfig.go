package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fgrzeskowiak/rulelearn/internal/runconfig"
)

// ValidateConfigOptions holds flags for the validate-config command.
type ValidateConfigOptions struct {
	*RootOptions
}

// NewValidateConfigCommand creates the validate-config command.
func NewValidateConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate-config <run-config.yaml>",
		Short: "Validate a run configuration without running induction",
		Long: `Parse a run configuration, check its structural requirements
(mode/measures agreement, required fields) and validate it against the
run configuration schema, without reading its attributes or objects
files or running induction.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateConfig(opts, args[0], cmd)
		},
	}

	return cmd
}

type validateConfigResult struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
}

func runValidateConfig(opts *ValidateConfigOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := runconfig.LoadRunConfig(configPath)
	if err != nil {
		var invalid *runconfig.InvalidConfigError
		if errors.As(err, &invalid) {
			_ = formatter.Error(string(invalid.Code), invalid.Message, nil)
			return NewExitError(ExitFailure, invalid.Error())
		}
		return WrapExitError(ExitFailure, "run config is invalid", err)
	}

	if opts.Format == "json" {
		return formatter.Success(validateConfigResult{Valid: true, Name: cfg.Name})
	}
	fmt.Fprintf(formatter.Writer, "%s: valid\n", cfg.Name)
	return nil
}
