package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("loading host rules", "path", "/etc/ssh/ssh_config")

	output := buf.String()
	if !strings.Contains(output, "loading host rules") || !strings.Contains(output, "path=/etc/ssh/ssh_config") {
		t.Errorf("unexpected output: %s", output)
	}
	if strings.Contains(output, "time=") {
		t.Errorf("text output should omit the timestamp, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, true, &buf)

	Debug("loading host rules", "rules", 3)

	output := buf.String()
	if !strings.HasPrefix(output, "{") || !strings.Contains(output, `"rules":3`) {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"time"`) {
		t.Errorf("JSON output should keep the timestamp, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Debug("debug message")

	if output := buf.String(); output != "" {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	log := With("file", "config")
	log.Debug("hidden")

	Setup(true, false, &buf)
	log = With("file", "config")
	log.Debug("skipping Match block", "line", 4)

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug line written while not verbose: %s", output)
	}
	if !strings.Contains(output, "file=config") || !strings.Contains(output, "line=4") {
		t.Errorf("Expected attributes in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Should not panic with nil writer
	Setup(false, false, nil)
	Debug("discarded")
	if With("k", "v") == nil {
		t.Error("With() returned nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	defer SetUserOutput(nil, nil)

	UserInfo("resolving %s", "bastion")
	UserSuccess("done")
	UserWarning("no rule matched %s", "example.com")
	UserError("failed: %v", "boom")

	if got, want := out.String(), "ℹ resolving bastion\n✓ done\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "⚠ no rule matched example.com\n✗ failed: boom\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}
