package cli

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/induction"
	"github.com/fgrzeskowiak/rulelearn/internal/ioformat"
	"github.com/fgrzeskowiak/rulelearn/internal/rulecache"
	"github.com/fgrzeskowiak/rulelearn/internal/rules"
	"github.com/fgrzeskowiak/rulelearn/internal/runconfig"
)

// InduceOptions holds flags for the induce command.
type InduceOptions struct {
	*RootOptions
	CachePath string
}

// NewInduceCommand creates the induce command.
func NewInduceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InduceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "induce <run-config.yaml>",
		Short: "Induce a decision rule set from a run configuration",
		Long: `Load a run configuration, read its attributes and objects, run
VC-DomLEM rule induction in the configured mode, and write the
resulting rule set as RuleML to the configured output path.

Example:
  rulelearn induce ./runs/bankruptcy.yaml
  rulelearn induce --cache ./cache.db ./runs/bankruptcy.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInduce(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CachePath, "cache", "", "path to a SQLite rule cache (memoizes repeated runs)")

	return cmd
}

// induceSummary is the JSON payload of a successful induce run.
type induceSummary struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Rules      int    `json:"rules"`
	OutputPath string `json:"output_path"`
	CacheHit   bool   `json:"cache_hit"`
}

func runInduce(opts *InduceOptions, configPath string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

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
	slog.Info("run config loaded", "name", cfg.Name, "mode", cfg.Mode)

	table, attrBytes, objBytes, err := loadTableFiles(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading information table", err)
	}
	slog.Info("information table loaded", "objects", table.NumObjects())

	var cache *rulecache.Store
	var cacheKey string
	if opts.CachePath != "" {
		cache, err = rulecache.Open(opts.CachePath)
		if err != nil {
			return WrapExitError(ExitCommandError, "opening rule cache", err)
		}
		defer cache.Close()

		cacheKey = rulecache.NewKey(
			rulecache.HashBytes(attrBytes),
			rulecache.HashBytes(objBytes),
			cfg.Mode,
			measureSpecs(cfg.Measures),
		)
		if cached, ok, err := cache.Get(cmd.Context(), cacheKey); err != nil {
			return WrapExitError(ExitCommandError, "reading rule cache", err)
		} else if ok {
			if err := os.WriteFile(cfg.OutputPath, cached, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "writing output file", err)
			}
			slog.Info("rule cache hit", "key", cacheKey)
			return formatter.Success(induceSummary{Name: cfg.Name, Mode: cfg.Mode, OutputPath: cfg.OutputPath, CacheHit: true})
		}
		slog.Info("rule cache miss", "key", cacheKey)
	}

	induced, err := runInduction(cfg, table)
	if err != nil {
		return WrapExitError(ExitCommandError, "induction failed", err)
	}
	slog.Info("induction complete", "rules", len(induced))

	ruleSet := rules.FromInducedRules(induced, rules.UUIDv7Generator{})

	var buf bytes.Buffer
	if err := ioformat.WriteRuleML(&buf, ruleSet); err != nil {
		return WrapExitError(ExitCommandError, "rendering RuleML", err)
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "writing output file", err)
	}

	if cache != nil {
		if err := cache.Put(cmd.Context(), cacheKey, cfg.Mode, buf.Bytes()); err != nil {
			return WrapExitError(ExitCommandError, "writing rule cache", err)
		}
	}

	return formatter.Success(induceSummary{
		Name:       cfg.Name,
		Mode:       cfg.Mode,
		Rules:      ruleSet.Len(),
		OutputPath: cfg.OutputPath,
	})
}

func runInduction(cfg *runconfig.RunConfig, table *data.InformationTable) ([]induction.InducedRule, error) {
	if cfg.Mode == runconfig.ModeVariableConsistency {
		measures, thresholds, err := resolveMeasures(cfg.Measures)
		if err != nil {
			return nil, err
		}
		return induction.InduceRulesVC(table, measures, thresholds)
	}
	return induction.InduceRules(table)
}
