package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fgrzeskowiak/rulelearn/internal/approx"
	"github.com/fgrzeskowiak/rulelearn/internal/consistency"
	"github.com/fgrzeskowiak/rulelearn/internal/data"
	"github.com/fgrzeskowiak/rulelearn/internal/ioformat"
	"github.com/fgrzeskowiak/rulelearn/internal/runconfig"
)

// loadTableFiles reads cfg's attributes and objects files and returns
// their raw bytes alongside the parsed InformationTable. The raw bytes
// are what rulecache keys are hashed over, so callers that need caching
// keep them instead of re-reading the files.
func loadTableFiles(cfg *runconfig.RunConfig) (table *data.InformationTable, attrBytes, objBytes []byte, err error) {
	attrBytes, err = os.ReadFile(cfg.AttributesPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading attributes file: %w", err)
	}
	attrs, err := ioformat.ParseAttributesJSON(bytes.NewReader(attrBytes))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing attributes: %w", err)
	}

	objBytes, err = os.ReadFile(cfg.ObjectsPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading objects file: %w", err)
	}

	switch cfg.ObjectsFormat {
	case runconfig.FormatJSON:
		table, err = ioformat.ParseObjectsJSON(attrs, bytes.NewReader(objBytes))
	default:
		table, err = ioformat.ParseObjectsCSV(attrs, bytes.NewReader(objBytes))
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing objects: %w", err)
	}
	return table, attrBytes, objBytes, nil
}

// resolveMeasures maps a run config's named measures onto the concrete
// internal/consistency implementations InduceRulesVC takes.
func resolveMeasures(cfgs []runconfig.MeasureConfig) ([]approx.ObjectConsistencyMeasure, []float64, error) {
	measures := make([]approx.ObjectConsistencyMeasure, len(cfgs))
	thresholds := make([]float64, len(cfgs))
	for i, m := range cfgs {
		switch strings.ToLower(m.Name) {
		case "epsilon":
			measures[i] = consistency.Epsilon{}
		case "epsilonprime", "epsilon_prime":
			measures[i] = consistency.EpsilonPrime{}
		default:
			return nil, nil, fmt.Errorf("unknown consistency measure %q", m.Name)
		}
		thresholds[i] = m.Threshold
	}
	return measures, thresholds, nil
}

// measureSpecs renders a run config's measures as sorted-by-caller
// "name=threshold" strings, the spelling rulecache.NewKey hashes.
func measureSpecs(cfgs []runconfig.MeasureConfig) []string {
	specs := make([]string, len(cfgs))
	for i, m := range cfgs {
		specs[i] = fmt.Sprintf("%s=%g", m.Name, m.Threshold)
	}
	return specs
}

// formatDecision renders a data.Decision for diagnostic output. Decision
// has no String method of its own - AtLeastAsGoodAs/Equal are the only
// contract callers outside this package need - so the CLI owns this
// reporting-only presentation.
func formatDecision(dec data.Decision) string {
	switch d := dec.(type) {
	case data.SimpleDecision:
		return fmt.Sprintf("attr%d=%s", d.AttributeIndex, d.Value.String())
	case data.CompositeDecision:
		parts := make([]string, len(d.Coordinates))
		for i, c := range d.Coordinates {
			parts[i] = fmt.Sprintf("attr%d=%s", c.AttributeIndex, c.Value.String())
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", dec)
	}
}
