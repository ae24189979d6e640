package bridge

import (
	"fmt"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
)

// UnsupportedInputKindError reports a parameter definition no translation
// rule matches. It aborts translation of the whole parameter set.
type UnsupportedInputKindError struct {
	Name string
	Kind processing.ParameterKind
}

func (e *UnsupportedInputKindError) Error() string {
	return fmt.Sprintf("input kind not supported for parameter '%s': %s", e.Name, e.Kind)
}

// UnsupportedOutputKindError reports an output definition no translation
// rule matches.
type UnsupportedOutputKindError struct {
	Name string
	Kind processing.OutputKind
}

func (e *UnsupportedOutputKindError) Error() string {
	return fmt.Sprintf("output kind not supported for output '%s': %s", e.Name, e.Kind)
}

// InvalidParameterValueError reports malformed client input: a bad default
// shape, an unresolvable enum value, an invalid layer spec scheme or a
// missing selection target.
type InvalidParameterValueError struct {
	Message string
}

func (e *InvalidParameterValueError) Error() string {
	return "invalid parameter value: " + e.Message
}

func invalidValuef(format string, args ...any) *InvalidParameterValueError {
	return &InvalidParameterValueError{Message: fmt.Sprintf(format, args...)}
}

// SelectionError reports a failure while applying a feature selection. It is
// a processing fault, not a client-input fault.
type SelectionError struct {
	Err error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("feature selection failed: %v", e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a complex value whose declared format
// cannot be interpreted.
type UnsupportedFormatError struct {
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	if e.MimeType == "" {
		return "unsupported data format"
	}
	return "unsupported data format: " + e.MimeType
}
