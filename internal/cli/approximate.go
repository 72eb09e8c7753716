package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/dominance"
	"github.com/fgrzeskowiak/rulelearn/internal/runconfig"
)

// ApproximateOptions holds flags for the approximate command.
type ApproximateOptions struct {
	*RootOptions
}

// NewApproximateCommand creates the approximate command.
func NewApproximateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApproximateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "approximate <run-config.yaml>",
		Short: "Report lower/upper approximation sizes for every class union",
		Long: `Load a run configuration's attributes and objects, build every
AT_LEAST and AT_MOST decision class union, and report each union's
lower and upper approximation size and rough-set accuracy. Useful for
inspecting a table's consistency before committing to a full induction
run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApproximate(opts, args[0], cmd)
		},
	}

	return cmd
}

// unionReport is one row of the approximate command's output.
type unionReport struct {
	Type     string  `json:"type"`
	Limiting string  `json:"limiting"`
	Lower    int     `json:"lower"`
	Upper    int     `json:"upper"`
	Boundary int     `json:"boundary"`
	Accuracy float64 `json:"accuracy"`
}

func runApproximate(opts *ApproximateOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := runconfig.LoadRunConfig(configPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading run config", err)
	}

	table, _, _, err := loadTableFiles(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading information table", err)
	}

	calc, err := resolveCalculator(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolving consistency measures", err)
	}

	reports, err := buildUnionReports(table, calc)
	if err != nil {
		return WrapExitError(ExitCommandError, "computing approximations", err)
	}

	if opts.Format == "json" {
		return formatter.Success(reports)
	}
	for _, r := range reports {
		fmt.Fprintf(formatter.Writer, "%-8s %-24s lower=%-5d upper=%-5d boundary=%-5d accuracy=%.3f\n",
			r.Type, r.Limiting, r.Lower, r.Upper, r.Boundary, r.Accuracy)
	}
	return nil
}

// resolveCalculator builds the RoughSetCalculator a run config's mode
// implies - the same choice InduceRules/InduceRulesVC make internally,
// exposed here so approximate can report the lower approximation a real
// induction run would actually see.
func resolveCalculator(cfg *runconfig.RunConfig) (approx.RoughSetCalculator, error) {
	if cfg.Mode != runconfig.ModeVariableConsistency {
		return approx.ClassicalCalculator{}, nil
	}
	measures, thresholds, err := resolveMeasures(cfg.Measures)
	if err != nil {
		return nil, err
	}
	return approx.NewVCRoughSetCalculator(measures, thresholds)
}

func buildUnionReports(table *data.InformationTable, calc approx.RoughSetCalculator) ([]unionReport, error) {
	classes := distinctDecisions(table)
	if len(classes) < 2 {
		return nil, nil
	}
	cones := dominance.NewCones(table)

	var reports []unionReport
	for _, unionType := range []approx.Type{approx.AtLeast, approx.AtMost} {
		for _, limiting := range classes {
			union, err := approx.NewUnion(table, cones, unionType, limiting, calc)
			if err != nil {
				return nil, err
			}
			lower := len(union.Lower())
			upper := len(union.Upper())
			reports = append(reports, unionReport{
				Type:     unionType.String(),
				Limiting: formatDecision(limiting),
				Lower:    lower,
				Upper:    upper,
				Boundary: len(union.Boundary()),
				Accuracy: accuracyOf(lower, upper),
			})
		}
	}
	return reports, nil
}

// accuracyOf is the classical rough-set accuracy of approximation,
// |lower|/|upper|. An empty union (lower == upper == 0) is degenerately
// fully accurate.
func accuracyOf(lower, upper int) float64 {
	if upper == 0 {
		return 1
	}
	return float64(lower) / float64(upper)
}

func distinctDecisions(table *data.InformationTable) []data.Decision {
	seen := map[any]bool{}
	var out []data.Decision
	for i := 0; i < table.NumObjects(); i++ {
		dec, ok := table.GetDecision(i)
		if !ok {
			continue
		}
		if seen[dec.Key()] {
			continue
		}
		seen[dec.Key()] = true
		out = append(out, dec)
	}
	return out
}
