// Package params defines the SSH host parameter record and its merge rule.
//
// # Host Parameters
//
// HostParams holds the connection settings a host rule can specify. Every
// field is an Optional, so a rule that says nothing about a setting is
// distinguishable from one that sets it to false, zero or an empty list:
//
//	var layer params.HostParams
//	layer.Compression = params.Some(false) // explicitly off
//	layer.HostName = params.Some("10.0.0.7")
//
// # Merging
//
// Rules are folded from least to most specific. Merge copies every field
// the incoming layer sets and leaves the others alone:
//
//	effective := params.New()
//	effective.Merge(&defaults)
//	effective.Merge(&hostBlock)
//
// The most recently merged value of a field wins. Lists are replaced as a
// whole, never concatenated. A field that has been set can be given a new
// value but never becomes unset again.
//
// HostParams does no locking. Callers merging into the same value from
// several goroutines must synchronize; the layer being merged in is only
// read and may be shared.
package params
