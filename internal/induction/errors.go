package induction

import "fmt"

// ElementaryConditionNotFoundError reports that the condition generator
// could not produce any new candidate condition for the current rule
// conditions. GrowRule stops at it and returns it together with the
// conditions gathered so far; SequentialCover does not recover from it
// and returns it to its caller, discarding the rules built in that run.
type ElementaryConditionNotFoundError struct {
	Reason string
}

func (e *ElementaryConditionNotFoundError) Error() string {
	return fmt.Sprintf("no elementary condition found: %s", e.Reason)
}

// InvalidInputErrorCode categorizes structural misconfiguration detected
// while building an induction run.
type InvalidInputErrorCode string

const (
	// ErrEvaluatorMonotonicitySwitchesTwice: the evaluator list changes
	// monotonicity type more than once.
	ErrEvaluatorMonotonicitySwitchesTwice InvalidInputErrorCode = "E201"
	// ErrNoEvaluators: a condition generator was built with zero evaluators.
	ErrNoEvaluators InvalidInputErrorCode = "E202"
)

// InvalidInputError reports a structural misconfiguration, fatal at the
// boundary of the offending constructor.
type InvalidInputError struct {
	Code    InvalidInputErrorCode
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalidInput(code InvalidInputErrorCode, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Code: code, Message: fmt.Sprintf(format, args...)}
}
