package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/sshconfig"
)

func sampleResult() resolve.Result {
	var p params.HostParams
	p.HostName = params.Some("10.0.0.5")
	p.ConnectTimeout = params.Some(5 * time.Second)
	p.TCPKeepAlive = params.Some(false)
	p.Ciphers = params.Some([]string{"aes256-gcm@openssh.com", "aes128-ctr"})
	p.MACs = params.Some([]string{})
	p.RemoteForward = params.Some(uint16(8080))
	p.CertificateFile = params.Some("/home/me/my certs/id-cert.pub")

	layer := resolve.Layer{Patterns: "bastion", Line: 4}
	origins := map[string]resolve.Layer{}
	for _, e := range p.Entries() {
		origins[e.Keyword] = layer
	}
	return resolve.Result{Host: "bastion", Params: p, Layers: []resolve.Layer{layer}, Origins: origins}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = (%q, %v), want %q", f, got, err, f)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatText, Options{Explain: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"bastion (10.0.0.5)",
		"ConnectTimeout",
		"aes256-gcm@openssh.com,aes128-ctr",
		`MACs`,
		`""`,
		"# Host bastion (line 4)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, resolve.Result{Host: "example.com"}, FormatText, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "(no parameters set)") {
		t.Errorf("output = %q, want empty marker", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatJSON, Options{Explain: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var view struct {
		Host    string            `json:"host"`
		Target  string            `json:"target"`
		Params  map[string]any    `json:"params"`
		Origins map[string]string `json:"origins"`
	}
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if view.Target != "10.0.0.5" {
		t.Errorf("target = %q, want %q", view.Target, "10.0.0.5")
	}
	if got := view.Params["connect_timeout"]; got != "5s" {
		t.Errorf("connect_timeout = %v, want %q", got, "5s")
	}
	if got := view.Params["tcp_keep_alive"]; got != false {
		t.Errorf("tcp_keep_alive = %v, want false", got)
	}
	if _, ok := view.Params["bind_address"]; ok {
		t.Error("unset bind_address should be omitted")
	}
	if got := view.Origins[params.KeyHostName]; got != "Host bastion (line 4)" {
		t.Errorf("origin = %q, want %q", got, "Host bastion (line 4)")
	}
}

// Structured formats must load back as a rule that yields the same params.
func TestWrite_RoundTrip(t *testing.T) {
	res := sampleResult()

	tests := []struct {
		format Format
		load   func(t *testing.T, data []byte) params.HostParams
	}{
		{FormatYAML, func(t *testing.T, data []byte) params.HostParams {
			doc, err := config.ParseYAML(data)
			if err != nil {
				t.Fatalf("ParseYAML failed: %v\n%s", err, data)
			}
			return doc.Hosts[0].Params()
		}},
		{FormatTOML, func(t *testing.T, data []byte) params.HostParams {
			doc, err := config.ParseTOML(data)
			if err != nil {
				t.Fatalf("ParseTOML failed: %v\n%s", err, data)
			}
			return doc.Hosts[0].Params()
		}},
		{FormatSSH, func(t *testing.T, data []byte) params.HostParams {
			f, err := sshconfig.Parse(bytes.NewReader(data), sshconfig.Options{})
			if err != nil {
				t.Fatalf("sshconfig.Parse failed: %v\n%s", err, data)
			}
			if got := f.Rules[0].Patterns.String(); got != "bastion" {
				t.Errorf("patterns = %q, want %q", got, "bastion")
			}
			return f.Rules[0].Params
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, res, tt.format, Options{}); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			got := tt.load(t, buf.Bytes())
			if diff := cmp.Diff(res.Params, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\n%s", diff, buf.String())
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleResult(), Format("xml"), Options{}); err == nil {
		t.Error("Write with unknown format should fail")
	}
}
