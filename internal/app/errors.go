package app

import (
	"errors"
	"fmt"

	"github.com/tacogips/plugtool/internal/plugin"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// UsageFailed indicates missing or invalid arguments.
	UsageFailed AppErrorType = iota
	// ConfigFailed indicates the configuration cannot be used.
	ConfigFailed
	// InternalInconsistency indicates the template and target path lists disagree.
	InternalInconsistency
	// FilesystemFailed indicates a filesystem operation failed.
	FilesystemFailed
	// Aborted indicates the operator declined a destructive step.
	Aborted
)

// ErrAborted is wrapped by errors returned when the operator declines to continue.
var ErrAborted = errors.New("aborted by user")

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a usage error.
func NewUsageError(message string, cause error) *AppError {
	return NewAppError(UsageFailed, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ConfigFailed, message, cause)
}

// NewFilesystemError creates a filesystem error.
func NewFilesystemError(message string, cause error) *AppError {
	return NewAppError(FilesystemFailed, message, cause)
}

// wrapPluginError converts a plugin pipeline error into an AppError of the matching type.
func wrapPluginError(message string, err error) *AppError {
	var pe *plugin.PluginError
	if errors.As(err, &pe) {
		switch pe.Type {
		case plugin.PluginInconsistent:
			return NewAppError(InternalInconsistency, "internal error: "+message, err)
		case plugin.PluginUsageInvalid:
			return NewUsageError(message, err)
		}
	}
	return NewFilesystemError(message, err)
}

// ErrorType returns the AppErrorType carried by err, if any.
func ErrorType(err error) (AppErrorType, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Type, true
	}
	return 0, false
}
