// Package sshconfig reads OpenSSH client configuration files into host
// rules.
//
// Only the keywords that map onto params.HostParams are interpreted.
// Everything else is skipped, or rejected in strict mode.
package sshconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/pattern"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
)

// Options controls parsing.
type Options struct {
	// Name is used in error messages.
	Name string
	// BaseDir anchors relative CertificateFile paths.
	BaseDir string
	// Strict rejects unknown keywords and Match blocks.
	Strict bool
}

// ParseError reports a problem at a specific line.
type ParseError struct {
	Name string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	name := e.Name
	if name == "" {
		name = "ssh_config"
	}
	return fmt.Sprintf("%s:%d: %v", name, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile reads the ssh_config at path. Relative certificate paths
// resolve against the file's directory unless opts.BaseDir is set.
func ParseFile(path string, opts Options) (*rules.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ssh config: %w", err)
	}
	defer f.Close()

	if opts.Name == "" {
		opts.Name = path
	}
	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(path)
	}

	file, err := Parse(f, opts)
	if err != nil {
		return nil, err
	}
	file.Path = path
	return file, nil
}

// Parse reads ssh_config text. Options that appear before the first Host
// line form a leading rule matching every host.
func Parse(r io.Reader, opts Options) (*rules.File, error) {
	file := &rules.File{Path: opts.Name}
	var current *rules.Rule
	skipping := false
	log := logging.With("file", opts.Name)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keyword, rest := splitKeyword(line)
		args, err := shellquote.Split(rest)
		if err != nil {
			return nil, &ParseError{Name: opts.Name, Line: lineNo, Err: err}
		}

		switch strings.ToLower(keyword) {
		case "host":
			patterns, err := pattern.Parse(args...)
			if err != nil {
				return nil, &ParseError{Name: opts.Name, Line: lineNo, Err: err}
			}
			file.Rules = append(file.Rules, rules.Rule{Patterns: patterns, Line: lineNo})
			current = &file.Rules[len(file.Rules)-1]
			skipping = false
			continue

		case "match":
			if opts.Strict {
				return nil, &ParseError{Name: opts.Name, Line: lineNo, Err: fmt.Errorf("Match blocks are not supported")}
			}
			log.Debug("skipping Match block", "line", lineNo)
			file.SkippedMatch = append(file.SkippedMatch, lineNo)
			skipping = true
			continue
		}

		if skipping {
			continue
		}

		if current == nil {
			file.Rules = append(file.Rules, rules.Rule{Patterns: pattern.MustParse("*"), Line: lineNo})
			current = &file.Rules[len(file.Rules)-1]
		}

		known, err := apply(&current.Params, keyword, args, opts.BaseDir)
		if err != nil {
			return nil, &ParseError{Name: opts.Name, Line: lineNo, Err: err}
		}
		if !known {
			if opts.Strict {
				return nil, &ParseError{Name: opts.Name, Line: lineNo, Err: fmt.Errorf("unsupported keyword %q", keyword)}
			}
			log.Debug("skipping unsupported keyword", "line", lineNo, "keyword", keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ssh config: %w", err)
	}

	return file, nil
}

// splitKeyword separates the keyword from its arguments. The keyword ends
// at the first whitespace or '=', and one '=' may follow it.
func splitKeyword(line string) (string, string) {
	i := strings.IndexAny(line, " \t=")
	if i < 0 {
		return line, ""
	}
	keyword := line[:i]
	rest := strings.TrimLeft(line[i:], " \t")
	rest = strings.TrimPrefix(rest, "=")
	return keyword, strings.TrimSpace(rest)
}
