// Package errors provides typed errors with exit codes for forage-ssh.
//
// # Error Types
//
// SSHParamsError wraps an error with an exit code:
//
//	type SSHParamsError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess        = 0 // Success
//	ExitGeneralError   = 1 // General/unknown errors
//	ExitConfigNotFound = 2 // Rule file does not exist
//	ExitParseError     = 3 // Rule file could not be parsed
//	ExitNoMatch        = 4 // No rule applies to the host
//	ExitSSHError       = 5 // ssh could not be run or failed
//	ExitInvalidInput   = 6 // Bad flags or arguments
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
