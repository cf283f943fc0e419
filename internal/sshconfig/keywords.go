package sshconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
)

// apply sets the field named by keyword on p. It reports false for
// keywords it does not know. The first value for a keyword in a block
// wins, as in ssh_config(5).
func apply(p *params.HostParams, keyword string, args []string, baseDir string) (bool, error) {
	var err error
	switch strings.ToLower(keyword) {
	case "bindaddress":
		err = setText(&p.BindAddress, args)
	case "bindinterface":
		err = setText(&p.BindInterface, args)
	case "casignaturealgorithms":
		err = setList(&p.CASignatureAlgorithms, args)
	case "certificatefile":
		err = setPath(&p.CertificateFile, args, baseDir)
	case "ciphers":
		err = setList(&p.Ciphers, args)
	case "compression":
		err = setBool(&p.Compression, args)
	case "connectionattempts":
		err = setUint(&p.ConnectionAttempts, args)
	case "connecttimeout":
		err = setSeconds(&p.ConnectTimeout, args)
	case "hostname":
		err = setText(&p.HostName, args)
	case "macs":
		err = setList(&p.MACs, args)
	case "pubkeyacceptedalgorithms", "pubkeyacceptedkeytypes":
		err = setList(&p.PubkeyAcceptedAlgorithms, args)
	case "pubkeyauthentication":
		err = setBool(&p.PubkeyAuthentication, args)
	case "remoteforward":
		err = setForwardPort(&p.RemoteForward, args)
	case "tcpkeepalive":
		err = setBool(&p.TCPKeepAlive, args)
	default:
		return false, nil
	}
	if err != nil {
		return true, fmt.Errorf("%s: %w", keyword, err)
	}
	return true, nil
}

func firstArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing argument")
	}
	return args[0], nil
}

func setText(o *params.Optional[string], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	*o = params.Some(v)
	return nil
}

func setPath(o *params.Optional[string], args []string, baseDir string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	path, err := rules.ExpandPath(v, baseDir)
	if err != nil {
		return err
	}
	*o = params.Some(path)
	return nil
}

// setList splits a comma-separated algorithm list. Order and any
// +/-/^ modifiers are kept verbatim.
func setList(o *params.Optional[[]string], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	list := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	*o = params.Some(list)
	return nil
}

func setBool(o *params.Optional[bool], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	b, err := parseBool(v)
	if err != nil {
		return err
	}
	*o = params.Some(b)
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q (must be yes or no)", v)
}

func setUint(o *params.Optional[uint], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	n, err := strconv.ParseUint(v, 10, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("invalid number %q", v)
	}
	*o = params.Some(uint(n))
	return nil
}

func setSeconds(o *params.Optional[time.Duration], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid timeout %q (must be whole seconds)", v)
	}
	*o = params.Some(time.Duration(n) * time.Second)
	return nil
}

// setForwardPort keeps the listen port of "[bind_address:]port".
func setForwardPort(o *params.Optional[uint16], args []string) error {
	v, err := firstArg(args)
	if err != nil || o.IsSet() {
		return err
	}
	if i := strings.LastIndex(v, ":"); i >= 0 {
		v = v[i+1:]
	}
	n, err := strconv.ParseUint(v, 10, 16)
	if err != nil || n == 0 {
		return fmt.Errorf("invalid port %q", v)
	}
	*o = params.Some(uint16(n))
	return nil
}
