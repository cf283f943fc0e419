// Package rules holds parsed host rules in file order.
package rules

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/pattern"
)

// Rule is one host block: the patterns it applies to and the parameters
// it sets.
type Rule struct {
	Patterns pattern.List
	Params   params.HostParams
	// Line is the 1-based line the block starts on, 0 when unknown.
	Line int
}

// Matches reports whether the rule applies to host.
func (r Rule) Matches(host string) bool {
	return r.Patterns.Match(host)
}

// File is an ordered list of rules read from one source.
type File struct {
	Path  string
	Rules []Rule
	// SkippedMatch lists the lines of Match blocks that were ignored.
	SkippedMatch []int
}

// Hosts returns the literal host names declared by the file's rules, in
// file order and without duplicates.
func (f *File) Hosts() []string {
	seen := make(map[string]bool)
	var hosts []string
	for _, r := range f.Rules {
		name, ok := r.Patterns.Literal()
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		hosts = append(hosts, name)
	}
	return hosts
}
