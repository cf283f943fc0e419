package params

import "time"

// HostParams is the set of connection parameters a host rule may specify.
// Field semantics follow ssh_config(5).
type HostParams struct {
	// BindAddress is the local source address of the connection.
	BindAddress Optional[string]
	// BindInterface is the local interface the connection is bound to.
	BindInterface Optional[string]
	// CASignatureAlgorithms lists algorithms CAs may use to sign certificates.
	CASignatureAlgorithms Optional[[]string]
	// CertificateFile is the path of the user's certificate.
	CertificateFile Optional[string]
	// Ciphers lists allowed ciphers in order of preference.
	Ciphers Optional[[]string]
	// Compression enables compression.
	Compression Optional[bool]
	// ConnectionAttempts is the number of tries before giving up.
	ConnectionAttempts Optional[uint]
	// ConnectTimeout bounds connection establishment.
	ConnectTimeout Optional[time.Duration]
	// HostName is the real host to connect to.
	HostName Optional[string]
	// MACs lists allowed MAC algorithms in order of preference.
	MACs Optional[[]string]
	// PubkeyAcceptedAlgorithms lists signature algorithms for public key auth.
	PubkeyAcceptedAlgorithms Optional[[]string]
	// PubkeyAuthentication enables public key authentication.
	PubkeyAuthentication Optional[bool]
	// RemoteForward is the remote port forwarded over the connection.
	RemoteForward Optional[uint16]
	// TCPKeepAlive enables TCP keepalives.
	TCPKeepAlive Optional[bool]
}

// New returns a HostParams with every field unset.
func New() HostParams {
	return HostParams{}
}

// Merge overrides p with every field that b sets. Fields b leaves unset
// keep their current value. b is not modified.
func (p *HostParams) Merge(b *HostParams) {
	override(&p.BindAddress, b.BindAddress)
	override(&p.BindInterface, b.BindInterface)
	overrideList(&p.CASignatureAlgorithms, b.CASignatureAlgorithms)
	override(&p.CertificateFile, b.CertificateFile)
	overrideList(&p.Ciphers, b.Ciphers)
	override(&p.Compression, b.Compression)
	override(&p.ConnectionAttempts, b.ConnectionAttempts)
	override(&p.ConnectTimeout, b.ConnectTimeout)
	override(&p.HostName, b.HostName)
	overrideList(&p.MACs, b.MACs)
	overrideList(&p.PubkeyAcceptedAlgorithms, b.PubkeyAcceptedAlgorithms)
	override(&p.PubkeyAuthentication, b.PubkeyAuthentication)
	override(&p.RemoteForward, b.RemoteForward)
	override(&p.TCPKeepAlive, b.TCPKeepAlive)
}

// Clone returns a deep copy of p.
func (p HostParams) Clone() HostParams {
	var c HostParams
	c.Merge(&p)
	return c
}

// IsEmpty reports whether no field is set.
func (p HostParams) IsEmpty() bool {
	return len(p.Entries()) == 0
}

// Equal reports whether p and q have the same fields set to equal values.
func (p HostParams) Equal(q HostParams) bool {
	return p.BindAddress.Equal(q.BindAddress) &&
		p.BindInterface.Equal(q.BindInterface) &&
		p.CASignatureAlgorithms.Equal(q.CASignatureAlgorithms) &&
		p.CertificateFile.Equal(q.CertificateFile) &&
		p.Ciphers.Equal(q.Ciphers) &&
		p.Compression.Equal(q.Compression) &&
		p.ConnectionAttempts.Equal(q.ConnectionAttempts) &&
		p.ConnectTimeout.Equal(q.ConnectTimeout) &&
		p.HostName.Equal(q.HostName) &&
		p.MACs.Equal(q.MACs) &&
		p.PubkeyAcceptedAlgorithms.Equal(q.PubkeyAcceptedAlgorithms) &&
		p.PubkeyAuthentication.Equal(q.PubkeyAuthentication) &&
		p.RemoteForward.Equal(q.RemoteForward) &&
		p.TCPKeepAlive.Equal(q.TCPKeepAlive)
}
