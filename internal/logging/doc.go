// Package logging provides logging utilities for forage-ssh.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loading host rules", "path", path, "format", format)
//	log := logging.With("file", name)
//	log.Debug("skipping Match block", "line", lineNo)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No hosts declared in %s", path)
//	logging.UserSuccess("%s is reachable", host)
//	logging.UserWarning("No rule matches %s", host)
//	logging.UserError("Failed to load rules: %v", err)
//
// Output destinations (redirect with SetUserOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
