// Package resolve computes the effective parameters for a connection
// target from an ordered set of host rules.
//
// Rule files list the most specific block first and the first value
// found for a setting wins. Resolve therefore folds the matching rules in
// reverse file order: a trailing "Host *" becomes the base layer and the
// earliest matching block is merged last.
package resolve

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
)

// Layer is a rule that contributed to a result.
type Layer struct {
	Patterns string
	Line     int
	Params   params.HostParams
}

// Result is the effective parameter set for one host.
type Result struct {
	// Host is the name that was resolved.
	Host string
	// Params is the merged parameter set.
	Params params.HostParams
	// Layers are the matching rules, least specific first.
	Layers []Layer
	// Origins maps each set keyword to the layer that supplied its value.
	Origins map[string]Layer
}

// Matched reports whether any rule applied to the host.
func (r Result) Matched() bool {
	return len(r.Layers) > 0
}

// Target returns the host to connect to: the resolved HostName, or the
// queried name when no rule sets one.
func (r Result) Target() string {
	return r.Params.HostName.OrElse(r.Host)
}

// Resolve folds every rule in f that matches host.
func Resolve(f *rules.File, host string) Result {
	res := Result{
		Host:    host,
		Params:  params.New(),
		Origins: make(map[string]Layer),
	}
	if f == nil {
		return res
	}

	for i := len(f.Rules) - 1; i >= 0; i-- {
		rule := f.Rules[i]
		if !rule.Matches(host) {
			continue
		}
		layer := Layer{
			Patterns: rule.Patterns.String(),
			Line:     rule.Line,
			Params:   rule.Params,
		}
		res.Params.Merge(&rule.Params)
		res.Layers = append(res.Layers, layer)
		for _, e := range rule.Params.Entries() {
			res.Origins[e.Keyword] = layer
		}
	}

	logging.Debug("resolved host", "host", host, "layers", len(res.Layers), "fields", len(res.Origins))
	return res
}

// Fold merges layers in the order given, least specific first.
func Fold(layers ...params.HostParams) params.HostParams {
	acc := params.New()
	for i := range layers {
		acc.Merge(&layers[i])
	}
	return acc
}
