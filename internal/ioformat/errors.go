package ioformat

import "fmt"

// FormatErrorCode categorizes a malformed input document.
type FormatErrorCode string

const (
	// ErrUnknownValueKind: an attribute declares a value-kind ioformat
	// does not recognize.
	ErrUnknownValueKind FormatErrorCode = "F001"
	// ErrFieldCountMismatch: a CSV/JSON row's field count does not
	// match the attribute list.
	ErrFieldCountMismatch FormatErrorCode = "F002"
	// ErrUnparsableValue: a field's text cannot be parsed as its
	// attribute's declared value kind.
	ErrUnparsableValue FormatErrorCode = "F003"
	// ErrUnknownEnumLabel: an enum field's label is not part of the
	// attribute's declared domain.
	ErrUnknownEnumLabel FormatErrorCode = "F004"
)

// FormatError reports a malformed input document, always fatal at the
// boundary of the parser that detected it.
type FormatError struct {
	Code    FormatErrorCode
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func formatError(code FormatErrorCode, format string, args ...any) *FormatError {
	return &FormatError{Code: code, Message: fmt.Sprintf(format, args...)}
}
