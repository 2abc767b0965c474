package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates Config.json (or the --config path) does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file cannot be read or decoded.
	ConfigInvalid
	// ConfigValidationFailed indicates a required key is missing or empty.
	ConfigValidationFailed
)

// String returns a short name for the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "not found"
	case ConfigInvalid:
		return "invalid"
	case ConfigValidationFailed:
		return "validation failed"
	}
	return fmt.Sprintf("ConfigErrorType(%d)", int(t))
}

// ConfigError describes why the tool configuration cannot be used.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the detail shown after the file and key.
	Message string
	// File is the configuration file path.
	File string
	// Field is the configuration key at fault, e.g. "SubFolder".
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.File
	if e.Field != "" {
		msg += ": key " + e.Field
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Summary returns the one-line message shown to the operator before usage.
func (e *ConfigError) Summary() string {
	switch e.Type {
	case ConfigNotFound:
		return fmt.Sprintf("Failed to find `%s`!", e.File)
	case ConfigInvalid:
		return fmt.Sprintf("Failed to parse `%s`!", e.File)
	}
	if e.Field != "" {
		return fmt.Sprintf("Missing `%s` in `%s`!", e.Field, e.File)
	}
	return fmt.Sprintf("Invalid configuration in `%s`: %s", e.File, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, file, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message}
}

// NewConfigErrorWithField creates a ConfigError naming the offending key.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Field: field, Message: message}
}

// NewConfigErrorWithCause creates a ConfigError wrapping cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message, Cause: cause}
}
