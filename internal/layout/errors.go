package layout

import "fmt"

// ErrorType categorizes layout rendering errors.
type ErrorType int

const (
	// ReadFailed indicates a template or auxiliary file could not be read.
	ReadFailed ErrorType = iota
	// MissingYield indicates a template referencing the yield partial was
	// rendered without wrapped content.
	MissingYield
	// UnresolvablePartial indicates a partial reference inside a literal
	// template, which has no directory to resolve file partials against.
	UnresolvablePartial
	// PartialReadFailed indicates a referenced partial file could not be read.
	PartialReadFailed
	// ReloadOnLiteral indicates Reload was called on a literal template.
	ReloadOnLiteral
	// UnsupportedInput indicates a pipeline entry with a streamed body.
	UnsupportedInput
	// VarLoaderFailed indicates the auxiliary variable parser failed.
	VarLoaderFailed
	// ScopeKeyMissing indicates a literal chain template with no explicit
	// scope name, leaving no key to expose its bindings under.
	ScopeKeyMissing
	// RenderFailed indicates the template expansion itself failed.
	RenderFailed
)

// Error represents a layout chain error.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Template is the path of the template being rendered, if known.
	Template string
	// Partial is the offending partial name, if the error concerns one.
	Partial string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Partial != "" {
		msg = fmt.Sprintf("%s (partial: %s)", msg, e.Partial)
	}
	if e.Template != "" {
		msg = fmt.Sprintf("%s (template: %s)", msg, e.Template)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a new Error for a template.
func newError(typ ErrorType, message string, t *Template, cause error) *Error {
	e := &Error{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
	if t != nil && t.path != nil {
		e.Template = t.path.Full
	}
	return e
}

// newPartialError creates a new Error naming the offending partial.
func newPartialError(typ ErrorType, message, partial string, t *Template, cause error) *Error {
	e := newError(typ, message, t, cause)
	e.Partial = partial
	return e
}
