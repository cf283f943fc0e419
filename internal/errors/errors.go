package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-ssh
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitConfigNotFound = 2
	ExitParseError     = 3
	ExitNoMatch        = 4
	ExitSSHError       = 5
	ExitInvalidInput   = 6
)

// SSHParamsError is the error type returned to the CLI entry point.
type SSHParamsError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SSHParamsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SSHParamsError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SSHParamsError) ExitCode() int {
	return e.Code
}

// New creates a new SSHParamsError
func New(code int, message string) *SSHParamsError {
	return &SSHParamsError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an SSHParamsError
func Wrap(code int, message string, cause error) *SSHParamsError {
	return &SSHParamsError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigNotFound returns an error for a missing rule file
func ConfigNotFound(path string, cause error) *SSHParamsError {
	return Wrap(ExitConfigNotFound, fmt.Sprintf("config not found: %s", path), cause)
}

// ParseError returns an error for a rule file that cannot be parsed
func ParseError(path string, cause error) *SSHParamsError {
	return Wrap(ExitParseError, fmt.Sprintf("failed to load %s", path), cause)
}

// NoMatch returns an error when no rule applies to a host
func NoMatch(host string) *SSHParamsError {
	return New(ExitNoMatch, fmt.Sprintf("no rule matches host %s", host))
}

// SSHError returns an error for SSH operations
func SSHError(message string, cause error) *SSHParamsError {
	return Wrap(ExitSSHError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SSHParamsError {
	return New(ExitInvalidInput, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var paramsErr *SSHParamsError
	if errors.As(err, &paramsErr) {
		return paramsErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
