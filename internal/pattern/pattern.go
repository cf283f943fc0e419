// Package pattern implements ssh_config host pattern lists.
//
// A pattern is a host name that may contain '*' (any run of characters)
// and '?' (exactly one character). A leading '!' negates it. A list
// matches a host when at least one positive pattern matches and no
// negated pattern does. Matching ignores case.
package pattern

import (
	"fmt"
	"path"
	"strings"
)

// Pattern is a single, possibly negated, host glob.
type Pattern struct {
	Glob    string
	Negated bool
}

func (p Pattern) String() string {
	if p.Negated {
		return "!" + p.Glob
	}
	return p.Glob
}

// match reports whether host matches the glob, ignoring negation.
func (p Pattern) match(host string) bool {
	ok, err := path.Match(escape(strings.ToLower(p.Glob)), strings.ToLower(host))
	return err == nil && ok
}

// escape quotes the characters path.Match treats specially but
// ssh_config does not.
func escape(glob string) string {
	var sb strings.Builder
	for _, r := range glob {
		switch r {
		case '[', ']', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// List is an ordered set of patterns as written on a Host line.
type List []Pattern

// Parse builds a List from Host arguments. Arguments may themselves be
// comma-separated.
func Parse(args ...string) (List, error) {
	var list List
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			p := Pattern{Glob: tok}
			if strings.HasPrefix(tok, "!") {
				p = Pattern{Glob: tok[1:], Negated: true}
			}
			if p.Glob == "" {
				return nil, fmt.Errorf("empty host pattern in %q", arg)
			}
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no host patterns given")
	}
	return list, nil
}

// MustParse is Parse that panics on error.
func MustParse(args ...string) List {
	l, err := Parse(args...)
	if err != nil {
		panic(err)
	}
	return l
}

// Match reports whether host is selected by the list.
func (l List) Match(host string) bool {
	matched := false
	for _, p := range l {
		if !p.match(host) {
			continue
		}
		if p.Negated {
			return false
		}
		matched = true
	}
	return matched
}

// Literal returns the host name when the list is a single plain pattern
// without wildcards or negation.
func (l List) Literal() (string, bool) {
	if len(l) != 1 || l[0].Negated || strings.ContainsAny(l[0].Glob, "*?") {
		return "", false
	}
	return l[0].Glob, true
}

// Strings returns the patterns as written.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, p := range l {
		out[i] = p.String()
	}
	return out
}

func (l List) String() string {
	return strings.Join(l.Strings(), " ")
}
