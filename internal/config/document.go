package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/pattern"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
)

// Document is a TOML or YAML rule file.
type Document struct {
	Hosts []HostDocument `toml:"host" yaml:"hosts" json:"hosts"`
}

// HostDocument is one rule. Nil pointers are parameters the rule leaves unset.
type HostDocument struct {
	Patterns                 []string  `toml:"patterns" yaml:"patterns" json:"patterns,omitempty"`
	BindAddress              *string   `toml:"bind_address,omitempty" yaml:"bind_address,omitempty" json:"bind_address,omitempty"`
	BindInterface            *string   `toml:"bind_interface,omitempty" yaml:"bind_interface,omitempty" json:"bind_interface,omitempty"`
	CASignatureAlgorithms    *[]string `toml:"ca_signature_algorithms,omitempty" yaml:"ca_signature_algorithms,omitempty" json:"ca_signature_algorithms,omitempty"`
	CertificateFile          *string   `toml:"certificate_file,omitempty" yaml:"certificate_file,omitempty" json:"certificate_file,omitempty"`
	Ciphers                  *[]string `toml:"ciphers,omitempty" yaml:"ciphers,omitempty" json:"ciphers,omitempty"`
	Compression              *bool     `toml:"compression,omitempty" yaml:"compression,omitempty" json:"compression,omitempty"`
	ConnectionAttempts       *uint     `toml:"connection_attempts,omitempty" yaml:"connection_attempts,omitempty" json:"connection_attempts,omitempty"`
	ConnectTimeout           *Duration `toml:"connect_timeout,omitempty" yaml:"connect_timeout,omitempty" json:"connect_timeout,omitempty"`
	HostName                 *string   `toml:"host_name,omitempty" yaml:"host_name,omitempty" json:"host_name,omitempty"`
	MACs                     *[]string `toml:"mac,omitempty" yaml:"mac,omitempty" json:"mac,omitempty"`
	PubkeyAcceptedAlgorithms *[]string `toml:"pubkey_accepted_algorithms,omitempty" yaml:"pubkey_accepted_algorithms,omitempty" json:"pubkey_accepted_algorithms,omitempty"`
	PubkeyAuthentication     *bool     `toml:"pubkey_authentication,omitempty" yaml:"pubkey_authentication,omitempty" json:"pubkey_authentication,omitempty"`
	RemoteForward            *uint16   `toml:"remote_forward,omitempty" yaml:"remote_forward,omitempty" json:"remote_forward,omitempty"`
	TCPKeepAlive             *bool     `toml:"tcp_keep_alive,omitempty" yaml:"tcp_keep_alive,omitempty" json:"tcp_keep_alive,omitempty"`
}

// Duration is a timeout written either as a Go duration ("30s", "1m") or
// as whole seconds, the unit ssh_config uses.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		d.Duration = time.Duration(n) * time.Second
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	if v < 0 {
		return fmt.Errorf("duration %q must not be negative", s)
	}
	d.Duration = v
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Validate checks that the Document is valid.
func (d *Document) Validate() error {
	for i, h := range d.Hosts {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("host %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks that the HostDocument is valid.
func (h *HostDocument) Validate() error {
	if _, err := pattern.Parse(h.Patterns...); err != nil {
		return fmt.Errorf("patterns: %w", err)
	}
	if h.RemoteForward != nil && *h.RemoteForward == 0 {
		return fmt.Errorf("remote_forward must be between 1 and 65535")
	}
	if h.ConnectTimeout != nil {
		d := h.ConnectTimeout.Duration
		if d < 0 {
			return fmt.Errorf("connect_timeout must not be negative")
		}
		// ssh takes whole seconds
		if d%time.Second != 0 {
			return fmt.Errorf("connect_timeout %s is not a whole number of seconds", d)
		}
	}
	return nil
}

// Params converts the rule to a parameter layer.
func (h *HostDocument) Params() params.HostParams {
	var p params.HostParams
	p.BindAddress = params.FromPtr(h.BindAddress)
	p.BindInterface = params.FromPtr(h.BindInterface)
	p.CASignatureAlgorithms = params.FromPtr(h.CASignatureAlgorithms)
	p.CertificateFile = params.FromPtr(h.CertificateFile)
	p.Ciphers = params.FromPtr(h.Ciphers)
	p.Compression = params.FromPtr(h.Compression)
	p.ConnectionAttempts = params.FromPtr(h.ConnectionAttempts)
	if h.ConnectTimeout != nil {
		p.ConnectTimeout = params.Some(h.ConnectTimeout.Duration)
	}
	p.HostName = params.FromPtr(h.HostName)
	p.MACs = params.FromPtr(h.MACs)
	p.PubkeyAcceptedAlgorithms = params.FromPtr(h.PubkeyAcceptedAlgorithms)
	p.PubkeyAuthentication = params.FromPtr(h.PubkeyAuthentication)
	p.RemoteForward = params.FromPtr(h.RemoteForward)
	p.TCPKeepAlive = params.FromPtr(h.TCPKeepAlive)
	return p
}

// DocumentFor converts a parameter set back into a rule document.
func DocumentFor(patterns []string, p params.HostParams) HostDocument {
	h := HostDocument{
		Patterns:                 patterns,
		BindAddress:              p.BindAddress.Ptr(),
		BindInterface:            p.BindInterface.Ptr(),
		CASignatureAlgorithms:    p.CASignatureAlgorithms.Ptr(),
		CertificateFile:          p.CertificateFile.Ptr(),
		Ciphers:                  p.Ciphers.Ptr(),
		Compression:              p.Compression.Ptr(),
		ConnectionAttempts:       p.ConnectionAttempts.Ptr(),
		HostName:                 p.HostName.Ptr(),
		MACs:                     p.MACs.Ptr(),
		PubkeyAcceptedAlgorithms: p.PubkeyAcceptedAlgorithms.Ptr(),
		PubkeyAuthentication:     p.PubkeyAuthentication.Ptr(),
		RemoteForward:            p.RemoteForward.Ptr(),
		TCPKeepAlive:             p.TCPKeepAlive.Ptr(),
	}
	if v, ok := p.ConnectTimeout.Get(); ok {
		h.ConnectTimeout = &Duration{Duration: v}
	}
	return h
}

// Rules converts the document into host rules. Relative certificate
// paths are resolved under baseDir.
func (d *Document) Rules(baseDir string) ([]rules.Rule, error) {
	out := make([]rules.Rule, 0, len(d.Hosts))
	for i := range d.Hosts {
		h := &d.Hosts[i]
		patterns, err := pattern.Parse(h.Patterns...)
		if err != nil {
			return nil, fmt.Errorf("host %d: %w", i+1, err)
		}
		p := h.Params()
		if cert, ok := p.CertificateFile.Get(); ok {
			path, err := rules.ExpandPath(cert, baseDir)
			if err != nil {
				return nil, fmt.Errorf("host %d: certificate_file: %w", i+1, err)
			}
			p.CertificateFile = params.Some(path)
		}
		out = append(out, rules.Rule{Patterns: patterns, Params: p})
	}
	return out, nil
}
