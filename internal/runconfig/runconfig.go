package runconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects which induction.InduceRules* entry point a run invokes.
const (
	ModeClassical           = "classical"
	ModeVariableConsistency = "variable_consistency"
)

// ObjectsFormat selects which internal/ioformat object parser a run
// invokes.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// MeasureConfig names one consistency measure and its threshold, mirroring
// the paired (measure, threshold) lists induction.InduceRulesVC takes.
type MeasureConfig struct {
	Name      string  `yaml:"name"`
	Threshold float64 `yaml:"threshold"`
}

// RunConfig is the full description of one induction run: where to read
// attributes and objects from, how to parse them, which mode to run,
// and where to write the resulting rule set.
type RunConfig struct {
	Name           string          `yaml:"name"`
	AttributesPath string          `yaml:"attributes_path"`
	ObjectsPath    string          `yaml:"objects_path"`
	ObjectsFormat  string          `yaml:"objects_format"`
	Mode           string          `yaml:"mode"`
	Measures       []MeasureConfig `yaml:"measures,omitempty"`
	OutputPath     string          `yaml:"output_path"`
}

// LoadRunConfig reads and parses a run configuration YAML file, then
// validates it structurally and against the CUE schema, the same two
// steps the teacher's LoadScenario performs (strict-field YAML decode
// followed by a dedicated validation pass).
func LoadRunConfig(path string) (*RunConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}

	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config YAML: %w", err)
	}

	if err := validateStructure(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateSchema(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateStructure(cfg *RunConfig) error {
	if cfg.Name == "" {
		return invalidConfig(ErrMissingField, "name is required")
	}
	if cfg.AttributesPath == "" {
		return invalidConfig(ErrMissingField, "attributes_path is required")
	}
	if cfg.ObjectsPath == "" {
		return invalidConfig(ErrMissingField, "objects_path is required")
	}
	if cfg.ObjectsFormat != FormatCSV && cfg.ObjectsFormat != FormatJSON {
		return invalidConfig(ErrUnknownMode, "objects_format must be %q or %q, got %q", FormatCSV, FormatJSON, cfg.ObjectsFormat)
	}
	if cfg.OutputPath == "" {
		return invalidConfig(ErrMissingField, "output_path is required")
	}

	switch cfg.Mode {
	case ModeClassical:
		if len(cfg.Measures) > 0 {
			return invalidConfig(ErrMeasuresUnexpected, "mode %q does not take measures", ModeClassical)
		}
	case ModeVariableConsistency:
		if len(cfg.Measures) == 0 {
			return invalidConfig(ErrMeasuresRequired, "mode %q requires at least one measure", ModeVariableConsistency)
		}
	default:
		return invalidConfig(ErrUnknownMode, "mode must be %q or %q, got %q", ModeClassical, ModeVariableConsistency, cfg.Mode)
	}
	return nil
}
