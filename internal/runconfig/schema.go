package runconfig

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// runConfigSchema is the CUE schema run configurations must unify with,
// grounded on the constraints validateStructure already enforces in
// Go - the schema is a second, declarative line of defense against
// malformed YAML the same way the teacher's compiler package validates
// CUE concept specs against their own schema before compilation.
const runConfigSchema = `
Name!:           string
AttributesPath!: string
ObjectsPath!:    string
ObjectsFormat!:  "csv" | "json"
Mode!:           "classical" | "variable_consistency"
Measures?: [...{
	Name!:      string
	Threshold!: number
}]
OutputPath!: string
`

// ValidateSchema checks cfg against runConfigSchema, catching structural
// mistakes validateStructure's hand-written checks might miss (e.g. a
// Measures entry with a stray extra field under KnownFields(true), or a
// non-numeric threshold smuggled through Go's loose YAML-to-float
// decoding).
func ValidateSchema(cfg *RunConfig) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(runConfigSchema)
	if err := schema.Err(); err != nil {
		return invalidConfig(ErrSchemaViolation, "compiling run config schema: %v", err)
	}

	encoded := ctx.Encode(toSchemaDoc(cfg))
	if err := encoded.Err(); err != nil {
		return invalidConfig(ErrSchemaViolation, "encoding run config: %v", err)
	}

	unified := schema.Unify(encoded)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return invalidConfig(ErrSchemaViolation, "run config does not satisfy schema: %v", err)
	}
	return nil
}

// toSchemaDoc builds a plain map from cfg, omitting Measures entirely
// when empty rather than leaning on cue's reflect-based struct encoding
// to guess the right representation for a nil slice against an
// optional schema field.
func toSchemaDoc(cfg *RunConfig) map[string]any {
	doc := map[string]any{
		"Name":           cfg.Name,
		"AttributesPath": cfg.AttributesPath,
		"ObjectsPath":    cfg.ObjectsPath,
		"ObjectsFormat":  cfg.ObjectsFormat,
		"Mode":           cfg.Mode,
		"OutputPath":     cfg.OutputPath,
	}
	if len(cfg.Measures) > 0 {
		measures := make([]map[string]any, len(cfg.Measures))
		for i, m := range cfg.Measures {
			measures[i] = map[string]any{"Name": m.Name, "Threshold": m.Threshold}
		}
		doc["Measures"] = measures
	}
	return doc
}
