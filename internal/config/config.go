package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/sshconfig"
)

// EnvConfigPath overrides the default configuration path.
const EnvConfigPath = "FORAGE_SSH_CONFIG"

// Format identifies a rule file syntax.
type Format string

const (
	FormatSSH  Format = "ssh"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatSSH
	}
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Strict rejects ssh_config keywords forage-ssh does not interpret.
	Strict bool
}

// DefaultPath returns $FORAGE_SSH_CONFIG, or ~/.ssh/config.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// Load reads and validates the rule file at path.
func Load(path string, opts LoadOptions) (*rules.File, error) {
	format := DetectFormat(path)
	logging.Debug("loading host rules", "path", path, "format", format)

	if format == FormatSSH {
		return sshconfig.ParseFile(path, sshconfig.Options{Strict: opts.Strict})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	var doc *Document
	switch format {
	case FormatTOML:
		doc, err = ParseTOML(data)
	case FormatYAML:
		doc, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule file %s: %w", path, err)
	}

	ruleList, err := doc.Rules(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("invalid rule file %s: %w", path, err)
	}

	return &rules.File{Path: path, Rules: ruleList}, nil
}

// ParseTOML decodes a TOML rule document. Unknown keys are an error.
func ParseTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return &doc, nil
}

// ParseYAML decodes a YAML rule document. Unknown keys are an error.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}
