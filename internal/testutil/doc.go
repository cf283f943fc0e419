// Package testutil provides rule file fixtures and helpers for tests.
//
// The fixtures describe the same two rules in every supported format:
//
//	fixtures/config      ssh_config
//	fixtures/rules.toml  TOML document
//	fixtures/rules.yaml  YAML document
//
// WriteFixture copies a fixture into a temporary directory so relative
// paths such as CertificateFile resolve against it:
//
//	func TestLoad(t *testing.T) {
//	    path := testutil.WriteFixture(t, "rules.toml")
//	    file, err := config.Load(path, config.LoadOptions{})
//	    ...
//	}
package testutil
