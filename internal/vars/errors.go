package vars

import "fmt"

// VarsErrorType categorizes variable loader errors.
type VarsErrorType int

const (
	// VarsReadFailed indicates the sidecar exists but could not be read.
	VarsReadFailed VarsErrorType = iota
	// VarsParseFailed indicates the sidecar could not be parsed.
	VarsParseFailed
)

// VarsError represents a variable loader error.
type VarsError struct {
	// Type categorizes the error.
	Type VarsErrorType
	// Message is the error message.
	Message string
	// File is the sidecar file path.
	File string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *VarsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
}

// Unwrap returns the underlying cause error.
func (e *VarsError) Unwrap() error {
	return e.Cause
}

// newVarsError creates a new VarsError.
func newVarsError(typ VarsErrorType, message, file string, cause error) *VarsError {
	return &VarsError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
