package runconfig

import "fmt"

// InvalidConfigErrorCode categorizes a structurally or schematically
// invalid run configuration.
type InvalidConfigErrorCode string

const (
	// ErrMissingField: a required field was empty.
	ErrMissingField InvalidConfigErrorCode = "R001"
	// ErrUnknownMode: Mode is neither "classical" nor "variable_consistency",
	// or ObjectsFormat is neither "csv" nor "json".
	ErrUnknownMode InvalidConfigErrorCode = "R002"
	// ErrMeasuresRequired: Mode is "variable_consistency" but Measures is empty.
	ErrMeasuresRequired InvalidConfigErrorCode = "R003"
	// ErrMeasuresUnexpected: Mode is "classical" but Measures is non-empty.
	ErrMeasuresUnexpected InvalidConfigErrorCode = "R004"
	// ErrSchemaViolation: the decoded config does not unify with the CUE schema.
	ErrSchemaViolation InvalidConfigErrorCode = "R005"
)

// InvalidConfigError reports a malformed run configuration, fatal at
// the boundary of LoadRunConfig/Validate.
type InvalidConfigError struct {
	Code    InvalidConfigErrorCode
	Message string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalidConfig(code InvalidConfigErrorCode, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{Code: code, Message: fmt.Sprintf(format, args...)}
}
