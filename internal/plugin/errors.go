package plugin

import (
	"errors"
	"fmt"
)

// PluginErrorType categorizes plugin errors.
type PluginErrorType int

const (
	// PluginFilesystemFailed indicates a filesystem primitive failed (not found, permission, write).
	PluginFilesystemFailed PluginErrorType = iota
	// PluginInconsistent indicates the source and target path lists are out of step.
	PluginInconsistent
	// PluginUsageInvalid indicates an unknown mode keyword or bad selector argument.
	PluginUsageInvalid
)

// PluginError represents plugin pipeline errors.
type PluginError struct {
	// Type categorizes the error.
	Type PluginErrorType
	// Message is the error message.
	Message string
	// Path is the file or directory related to the error (if applicable).
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *PluginError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (path: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (path: %s)", e.Message, e.Path)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *PluginError) Unwrap() error {
	return e.Cause
}

// newPluginError creates a new PluginError.
func newPluginError(typ PluginErrorType, message, path string, cause error) *PluginError {
	return &PluginError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// IsType reports whether err is a PluginError of the given type.
func IsType(err error, typ PluginErrorType) bool {
	var pe *PluginError
	if errors.As(err, &pe) {
		return pe.Type == typ
	}
	return false
}
