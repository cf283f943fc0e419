package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func optionalOf[T any](g *rapid.Generator[T]) *rapid.Generator[Optional[T]] {
	return rapid.Custom(func(t *rapid.T) Optional[T] {
		if rapid.Bool().Draw(t, "set") {
			return Some(g.Draw(t, "value"))
		}
		return None[T]()
	})
}

func hostParamsGen() *rapid.Generator[HostParams] {
	text := rapid.StringMatching(`[a-z0-9.\-]{0,12}`)
	list := rapid.SliceOfN(rapid.SampledFrom([]string{
		"aes128-ctr", "aes256-gcm@openssh.com", "chacha20-poly1305@openssh.com",
		"hmac-sha2-256", "ssh-ed25519", "rsa-sha2-512",
	}), 0, 4)
	duration := rapid.Custom(func(t *rapid.T) time.Duration {
		return time.Duration(rapid.Int64Range(0, 3600).Draw(t, "seconds")) * time.Second
	})

	return rapid.Custom(func(t *rapid.T) HostParams {
		return HostParams{
			BindAddress:              optionalOf(text).Draw(t, "BindAddress"),
			BindInterface:            optionalOf(text).Draw(t, "BindInterface"),
			CASignatureAlgorithms:    optionalOf(list).Draw(t, "CASignatureAlgorithms"),
			CertificateFile:          optionalOf(text).Draw(t, "CertificateFile"),
			Ciphers:                  optionalOf(list).Draw(t, "Ciphers"),
			Compression:              optionalOf(rapid.Bool()).Draw(t, "Compression"),
			ConnectionAttempts:       optionalOf(rapid.UintRange(0, 16)).Draw(t, "ConnectionAttempts"),
			ConnectTimeout:           optionalOf(duration).Draw(t, "ConnectTimeout"),
			HostName:                 optionalOf(text).Draw(t, "HostName"),
			MACs:                     optionalOf(list).Draw(t, "MACs"),
			PubkeyAcceptedAlgorithms: optionalOf(list).Draw(t, "PubkeyAcceptedAlgorithms"),
			PubkeyAuthentication:     optionalOf(rapid.Bool()).Draw(t, "PubkeyAuthentication"),
			RemoteForward:            optionalOf(rapid.Uint16()).Draw(t, "RemoteForward"),
			TCPKeepAlive:             optionalOf(rapid.Bool()).Draw(t, "TCPKeepAlive"),
		}
	})
}

// fieldValues maps each set keyword to its value. Lists are copied so a
// nil and an empty list compare equal.
func fieldValues(p HostParams) map[string]any {
	m := make(map[string]any)
	for _, e := range p.Entries() {
		if list, ok := e.Value.([]string); ok {
			m[e.Keyword] = append([]string{}, list...)
			continue
		}
		m[e.Keyword] = e.Value
	}
	return m
}

// copyField sets dst's field named by key to src's.
func copyField(dst *HostParams, src HostParams, key string) {
	switch key {
	case KeyBindAddress:
		dst.BindAddress = src.BindAddress
	case KeyBindInterface:
		dst.BindInterface = src.BindInterface
	case KeyCASignatureAlgorithms:
		dst.CASignatureAlgorithms = src.CASignatureAlgorithms
	case KeyCertificateFile:
		dst.CertificateFile = src.CertificateFile
	case KeyCiphers:
		dst.Ciphers = src.Ciphers
	case KeyCompression:
		dst.Compression = src.Compression
	case KeyConnectionAttempts:
		dst.ConnectionAttempts = src.ConnectionAttempts
	case KeyConnectTimeout:
		dst.ConnectTimeout = src.ConnectTimeout
	case KeyHostName:
		dst.HostName = src.HostName
	case KeyMACs:
		dst.MACs = src.MACs
	case KeyPubkeyAcceptedAlgorithms:
		dst.PubkeyAcceptedAlgorithms = src.PubkeyAcceptedAlgorithms
	case KeyPubkeyAuthentication:
		dst.PubkeyAuthentication = src.PubkeyAuthentication
	case KeyRemoteForward:
		dst.RemoteForward = src.RemoteForward
	case KeyTCPKeepAlive:
		dst.TCPKeepAlive = src.TCPKeepAlive
	}
}

func TestMergeProperty_Identity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := hostParamsGen().Draw(t, "p")

		got := p.Clone()
		empty := New()
		got.Merge(&empty)
		assert.True(t, got.Equal(p), "merging an empty layer must be a no-op")

		fromEmpty := New()
		fromEmpty.Merge(&p)
		assert.True(t, fromEmpty.Equal(p), "merging into an empty set must yield the layer")
	})
}

func TestMergeProperty_OverrideAndPreserve(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := hostParamsGen().Draw(t, "p")
		q := hostParamsGen().Draw(t, "q")

		got := p.Clone()
		got.Merge(&q)

		before := fieldValues(p)
		incoming := fieldValues(q)
		after := fieldValues(got)
		for _, key := range Keywords {
			if v, ok := incoming[key]; ok {
				assert.Equal(t, v, after[key], "%s should take the incoming value", key)
				continue
			}
			want, wasSet := before[key]
			have, isSet := after[key]
			require.Equal(t, wasSet, isSet, "%s presence changed", key)
			assert.Equal(t, want, have, "%s should be preserved", key)
		}
	})
}

func TestMergeProperty_IdempotentOnRepeat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := hostParamsGen().Draw(t, "p")
		q := hostParamsGen().Draw(t, "q")

		once := p.Clone()
		once.Merge(&q)
		twice := once.Clone()
		twice.Merge(&q)

		assert.True(t, once.Equal(twice), "repeating a merge must not change the result")
	})
}

func TestMergeProperty_NoCrossTalk(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := hostParamsGen().Draw(t, "p")
		q := hostParamsGen().Draw(t, "q")
		alt := hostParamsGen().Draw(t, "alt")
		key := rapid.SampledFrom(Keywords).Draw(t, "key")

		q2 := q.Clone()
		copyField(&q2, alt, key)

		r1 := p.Clone()
		r1.Merge(&q)
		r2 := p.Clone()
		r2.Merge(&q2)

		v1, v2 := fieldValues(r1), fieldValues(r2)
		for _, other := range Keywords {
			if other == key {
				continue
			}
			a, aok := v1[other]
			b, bok := v2[other]
			require.Equal(t, aok, bok, "%s presence differs after changing %s", other, key)
			assert.Equal(t, a, b, "%s differs after changing %s", other, key)
		}
	})
}

func TestMergeProperty_NoReversion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		acc := New()
		layers := rapid.SliceOfN(hostParamsGen(), 1, 6).Draw(t, "layers")

		seen := map[string]bool{}
		for _, layer := range layers {
			acc.Merge(&layer)
			for key := range fieldValues(acc) {
				seen[key] = true
			}
			now := fieldValues(acc)
			for key := range seen {
				_, ok := now[key]
				assert.True(t, ok, "%s reverted to unset", key)
			}
		}
	})
}

func TestMergeProperty_LastWriterWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		layers := rapid.SliceOfN(hostParamsGen(), 1, 6).Draw(t, "layers")

		acc := New()
		for i := range layers {
			acc.Merge(&layers[i])
		}

		got := fieldValues(acc)
		for _, key := range Keywords {
			var want any
			found := false
			for i := len(layers) - 1; i >= 0; i-- {
				if v, ok := fieldValues(layers[i])[key]; ok {
					want, found = v, true
					break
				}
			}
			have, ok := got[key]
			require.Equal(t, found, ok, "%s presence", key)
			assert.Equal(t, want, have, "%s should hold the last merged value", key)
		}
	})
}
