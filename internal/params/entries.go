package params

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ssh_config keywords for each HostParams field.
const (
	KeyBindAddress              = "BindAddress"
	KeyBindInterface            = "BindInterface"
	KeyCASignatureAlgorithms    = "CASignatureAlgorithms"
	KeyCertificateFile          = "CertificateFile"
	KeyCiphers                  = "Ciphers"
	KeyCompression              = "Compression"
	KeyConnectionAttempts       = "ConnectionAttempts"
	KeyConnectTimeout           = "ConnectTimeout"
	KeyHostName                 = "HostName"
	KeyMACs                     = "MACs"
	KeyPubkeyAcceptedAlgorithms = "PubkeyAcceptedAlgorithms"
	KeyPubkeyAuthentication     = "PubkeyAuthentication"
	KeyRemoteForward            = "RemoteForward"
	KeyTCPKeepAlive             = "TCPKeepAlive"
)

// Keywords lists every field keyword in canonical order.
var Keywords = []string{
	KeyBindAddress,
	KeyBindInterface,
	KeyCASignatureAlgorithms,
	KeyCertificateFile,
	KeyCiphers,
	KeyCompression,
	KeyConnectionAttempts,
	KeyConnectTimeout,
	KeyHostName,
	KeyMACs,
	KeyPubkeyAcceptedAlgorithms,
	KeyPubkeyAuthentication,
	KeyRemoteForward,
	KeyTCPKeepAlive,
}

// Entry is one set field of a HostParams.
type Entry struct {
	Keyword string
	Value   any
}

// String formats the value the way ssh_config spells it.
func (e Entry) String() string {
	switch v := e.Value.(type) {
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case []string:
		return strings.Join(v, ",")
	case time.Duration:
		// ssh_config timeouts are whole seconds
		return strconv.FormatInt(int64(v.Round(time.Second)/time.Second), 10)
	default:
		return fmt.Sprint(v)
	}
}

// Entries returns the set fields of p in canonical keyword order.
func (p HostParams) Entries() []Entry {
	var e []Entry
	e = appendEntry(e, KeyBindAddress, p.BindAddress)
	e = appendEntry(e, KeyBindInterface, p.BindInterface)
	e = appendEntry(e, KeyCASignatureAlgorithms, p.CASignatureAlgorithms)
	e = appendEntry(e, KeyCertificateFile, p.CertificateFile)
	e = appendEntry(e, KeyCiphers, p.Ciphers)
	e = appendEntry(e, KeyCompression, p.Compression)
	e = appendEntry(e, KeyConnectionAttempts, p.ConnectionAttempts)
	e = appendEntry(e, KeyConnectTimeout, p.ConnectTimeout)
	e = appendEntry(e, KeyHostName, p.HostName)
	e = appendEntry(e, KeyMACs, p.MACs)
	e = appendEntry(e, KeyPubkeyAcceptedAlgorithms, p.PubkeyAcceptedAlgorithms)
	e = appendEntry(e, KeyPubkeyAuthentication, p.PubkeyAuthentication)
	e = appendEntry(e, KeyRemoteForward, p.RemoteForward)
	e = appendEntry(e, KeyTCPKeepAlive, p.TCPKeepAlive)
	return e
}

func appendEntry[T any](entries []Entry, key string, o Optional[T]) []Entry {
	if v, ok := o.Get(); ok {
		return append(entries, Entry{Keyword: key, Value: v})
	}
	return entries
}
