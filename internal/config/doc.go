// Package config loads host rule files for forage-ssh.
//
// # Formats
//
// Three formats are understood, chosen by file extension:
//
//   - .toml: a TOML rule document
//   - .yaml, .yml: the same document in YAML
//   - anything else: OpenSSH ssh_config text (see package sshconfig)
//
// # Rule Documents
//
// A document is a list of host rules, most specific first, exactly as
// Host blocks are ordered in ssh_config:
//
//	[[host]]
//	patterns = ["bastion"]
//	host_name = "10.0.0.5"
//	connect_timeout = "5s"
//	tcp_keep_alive = false
//
//	[[host]]
//	patterns = ["*"]
//	compression = true
//
// Keys that are absent leave the parameter unset. An explicit false, 0 or
// empty list is a value and overrides less specific rules.
//
// # Validation
//
// Documents implement Validate(). Load validates after parsing.
package config
