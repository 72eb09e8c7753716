package runconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRunConfigAcceptsValidClassicalConfig(t *testing.T) {
	path := writeConfig(t, `
name: demo
attributes_path: attrs.json
objects_path: objects.csv
objects_format: csv
mode: classical
output_path: rules.ruleml
`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, ModeClassical, cfg.Mode)
	assert.Empty(t, cfg.Measures)
}

func TestLoadRunConfigAcceptsValidVariableConsistencyConfig(t *testing.T) {
	path := writeConfig(t, `
name: demo-vc
attributes_path: attrs.json
objects_path: objects.json
objects_format: json
mode: variable_consistency
measures:
  - name: epsilon
    threshold: 0.1
output_path: rules.ruleml
`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Measures, 1)
	assert.Equal(t, "epsilon", cfg.Measures[0].Name)
	assert.Equal(t, 0.1, cfg.Measures[0].Threshold)
}

func TestLoadRunConfigRejectsUnknownField(t *testing.T) {
	path := writeConfig(t, `
name: demo
attributes_path: attrs.json
objects_path: objects.csv
objects_format: csv
mode: classical
output_path: rules.ruleml
typo_field: oops
`)

	_, err := LoadRunConfig(path)
	require.Error(t, err)
}

func TestLoadRunConfigRejectsVariableConsistencyWithoutMeasures(t *testing.T) {
	path := writeConfig(t, `
name: demo
attributes_path: attrs.json
objects_path: objects.csv
objects_format: csv
mode: variable_consistency
output_path: rules.ruleml
`)

	_, err := LoadRunConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R003")
}

func TestLoadRunConfigRejectsClassicalWithMeasures(t *testing.T) {
	path := writeConfig(t, `
name: demo
attributes_path: attrs.json
objects_path: objects.csv
objects_format: csv
mode: classical
measures:
  - name: epsilon
    threshold: 0.1
output_path: rules.ruleml
`)

	_, err := LoadRunConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R004")
}

func TestLoadRunConfigRejectsUnknownObjectsFormat(t *testing.T) {
	path := writeConfig(t, `
name: demo
attributes_path: attrs.json
objects_path: objects.csv
objects_format: xml
mode: classical
output_path: rules.ruleml
`)

	_, err := LoadRunConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R002")
}
