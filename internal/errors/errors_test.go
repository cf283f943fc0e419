package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSSHParamsError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *SSHParamsError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestSSHParamsError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")
	tests := []struct {
		name     string
		err      *SSHParamsError
		wantCode int
		wantMsg  string
	}{
		{"config not found", ConfigNotFound("/home/u/.ssh/config", cause), ExitConfigNotFound, "config not found: /home/u/.ssh/config: boom"},
		{"parse error", ParseError("rules.toml", cause), ExitParseError, "failed to load rules.toml: boom"},
		{"no match", NoMatch("example.com"), ExitNoMatch, "no rule matches host example.com"},
		{"ssh error", SSHError("failed to connect", cause), ExitSSHError, "failed to connect: boom"},
		{"validation", ValidationError("port out of range"), ExitInvalidInput, "port out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "SSHParamsError",
			err:      NoMatch("test"),
			wantCode: ExitNoMatch,
		},
		{
			name:     "wrapped SSHParamsError",
			err:      fmt.Errorf("outer: %w", ParseError("x", nil)),
			wantCode: ExitParseError,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestIs(t *testing.T) {
	target := fmt.Errorf("target error")
	wrapped := fmt.Errorf("wrapped: %w", target)

	if !Is(wrapped, target) {
		t.Error("Is() should return true for wrapped error")
	}

	other := fmt.Errorf("other error")
	if Is(wrapped, other) {
		t.Error("Is() should return false for different error")
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitParseError, "parse error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var paramsErr *SSHParamsError
	if !As(outer, &paramsErr) {
		t.Fatal("As should find SSHParamsError")
	}
	if paramsErr.Code != ExitParseError {
		t.Errorf("Code = %d, want %d", paramsErr.Code, ExitParseError)
	}
}
