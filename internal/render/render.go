// Package render writes resolved host parameters in the formats the CLI
// offers.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatSSH  Format = "ssh"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatSSH}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (must be one of text, json, yaml, toml, ssh)", s)
}

// Options tunes the output.
type Options struct {
	// Explain adds the rule that supplied each value.
	Explain bool
}

// Write renders r to w.
func Write(w io.Writer, r resolve.Result, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, r, opts)
	case FormatJSON:
		return writeJSON(w, r, opts)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(r)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(document(r)); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case FormatSSH:
		return writeSSHConfig(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

// document wraps the result as a single-rule document that Load accepts.
func document(r resolve.Result) config.Document {
	return config.Document{Hosts: []config.HostDocument{
		config.DocumentFor([]string{r.Host}, r.Params),
	}}
}

type jsonView struct {
	Host    string              `json:"host"`
	Target  string              `json:"target"`
	Params  config.HostDocument `json:"params"`
	Origins map[string]string   `json:"origins,omitempty"`
}

func writeJSON(w io.Writer, r resolve.Result, opts Options) error {
	view := jsonView{
		Host:   r.Host,
		Target: r.Target(),
		Params: config.DocumentFor(nil, r.Params),
	}
	if opts.Explain {
		view.Origins = make(map[string]string, len(r.Origins))
		for key, layer := range r.Origins {
			view.Origins[key] = origin(layer)
		}
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func origin(l resolve.Layer) string {
	if l.Line > 0 {
		return fmt.Sprintf("Host %s (line %d)", l.Patterns, l.Line)
	}
	return "Host " + l.Patterns
}

func writeText(w io.Writer, r resolve.Result, opts Options) error {
	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle := re.NewStyle().Foreground(lipgloss.Color("245"))
	originStyle := re.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	var sb strings.Builder
	header := r.Host
	if target := r.Target(); target != r.Host {
		header = fmt.Sprintf("%s (%s)", r.Host, target)
	}
	sb.WriteString(headerStyle.Render(header) + "\n")

	entries := r.Params.Entries()
	if len(entries) == 0 {
		sb.WriteString("  (no parameters set)\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Keyword))
	}
	for _, e := range entries {
		line := "  " + keyStyle.Render(fmt.Sprintf("%-*s", width, e.Keyword)) + "  " + displayValue(e)
		if opts.Explain {
			if layer, ok := r.Origins[e.Keyword]; ok {
				line += "  " + originStyle.Render("# "+origin(layer))
			}
		}
		sb.WriteString(line + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func displayValue(e params.Entry) string {
	if list, ok := e.Value.([]string); ok && len(list) == 0 {
		return `""`
	}
	return e.String()
}

var sshQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func writeSSHConfig(w io.Writer, r resolve.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Host %s\n", r.Host)
	for _, e := range r.Params.Entries() {
		v := e.String()
		if v == "" || strings.ContainsAny(v, " \t\"'\\") {
			v = `"` + sshQuoter.Replace(v) + `"`
		}
		fmt.Fprintf(&sb, "    %s %s\n", e.Keyword, v)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
