// Package ssh turns resolved host parameters into ssh invocations.
package ssh

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
)

// Binary is the ssh client to run.
var Binary = "ssh"

// DefaultCheckTimeout bounds CheckConnection when the parameters set no
// ConnectTimeout.
const DefaultCheckTimeout = 5 * time.Second

// Options configures one ssh invocation.
type Options struct {
	// Alias is the host name as the user typed it.
	Alias      string
	User       string
	Port       int
	Params     params.HostParams
	BatchMode  bool
	RequestTTY bool
	// IgnoreUserConfig passes -F /dev/null so ssh applies only Params.
	IgnoreUserConfig bool
}

// OptionsFor returns Options for a resolved host.
func OptionsFor(r resolve.Result) Options {
	return Options{
		Alias:  r.Host,
		Params: r.Params.Clone(),
	}
}

// WithUser returns a copy with the login user set.
func (o Options) WithUser(user string) Options {
	o.User = user
	return o
}

// WithPort returns a copy with the port set.
func (o Options) WithPort(port int) Options {
	o.Port = port
	return o
}

// WithBatchMode returns a copy with batch mode enabled.
func (o Options) WithBatchMode() Options {
	o.BatchMode = true
	return o
}

// WithTTY returns a copy with TTY requested.
func (o Options) WithTTY() Options {
	o.RequestTTY = true
	return o
}

// WithTimeout returns a copy whose ConnectTimeout is overridden.
func (o Options) WithTimeout(d time.Duration) Options {
	var layer params.HostParams
	layer.ConnectTimeout = params.Some(d)
	o.Params = o.Params.Clone()
	o.Params.Merge(&layer)
	return o
}

// WithoutUserConfig returns a copy that keeps ssh from reading its own
// configuration files.
func (o Options) WithoutUserConfig() Options {
	o.IgnoreUserConfig = true
	return o
}

// BaseArgs returns the ssh arguments (options only, no destination).
func (o Options) BaseArgs() []string {
	var args []string

	if o.IgnoreUserConfig {
		args = append(args, "-F", "/dev/null")
	}

	if o.Port > 0 {
		args = append(args, "-p", strconv.Itoa(o.Port))
	}

	if o.User != "" {
		args = append(args, "-l", o.User)
	}

	for _, e := range o.Params.Entries() {
		if e.Keyword == params.KeyRemoteForward {
			// Only the listen port is kept, and a bare port means a
			// dynamic forward to ssh. The user's own config still
			// carries the static forward.
			logging.Debug("omitting RemoteForward", "port", e.String())
			continue
		}
		if list, ok := e.Value.([]string); ok && len(list) == 0 {
			// ssh rejects empty algorithm lists
			logging.Debug("omitting empty list", "keyword", e.Keyword)
			continue
		}
		args = append(args, "-o", fmt.Sprintf("%s=%s", e.Keyword, e.String()))
	}

	if o.BatchMode {
		args = append(args, "-o", "BatchMode=yes")
	}

	if o.RequestTTY {
		args = append(args, "-t")
	}

	return args
}

// Destination returns the host argument passed to ssh. The resolved
// HostName travels as an option, so ssh still sees the alias.
func (o Options) Destination() string {
	return o.Alias
}

// BuildArgs returns complete SSH arguments for executing a command.
func (o Options) BuildArgs(command ...string) []string {
	args := o.BaseArgs()
	args = append(args, o.Destination())
	args = append(args, command...)
	return args
}

// BuildArgsWithArgv returns complete SSH arguments including "ssh" as argv[0].
// Used for syscall.Exec which requires the program name in argv.
func (o Options) BuildArgsWithArgv(command ...string) []string {
	args := []string{"ssh"}
	args = append(args, o.BuildArgs(command...)...)
	return args
}

// CommandLine returns the full ssh command as a shell-quoted string.
func (o Options) CommandLine(command ...string) string {
	return shellquote.Join(o.BuildArgsWithArgv(command...)...)
}

// checkTimeout is the deadline for CheckConnection: the connect timeout
// plus a second for the remote command.
func (o Options) checkTimeout() time.Duration {
	return o.Params.ConnectTimeout.OrElse(DefaultCheckTimeout) + time.Second
}

// ExecWithOutput runs a command over ssh in batch mode and returns stdout.
func ExecWithOutput(ctx context.Context, opts Options, command ...string) (string, error) {
	cmd := exec.CommandContext(ctx, Binary, opts.WithBatchMode().BuildArgs(command...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return string(output), fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return string(output), err
}

// ReplaceWithSession replaces the current process with an SSH session.
// This uses syscall.Exec and does not return on success.
func ReplaceWithSession(opts Options, command ...string) error {
	sshPath, err := exec.LookPath(Binary)
	if err != nil {
		return fmt.Errorf("ssh not found: %w", err)
	}

	if len(command) > 0 {
		opts = opts.WithTTY()
	}
	sshArgs := opts.BuildArgsWithArgv(command...)
	logging.Debug("exec ssh", "path", sshPath, "args", sshArgs)

	return syscall.Exec(sshPath, sshArgs, os.Environ())
}

// CheckConnection runs "uname -n" on the host in batch mode and returns
// the name the remote reports for itself.
func CheckConnection(ctx context.Context, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.checkTimeout())
	defer cancel()

	out, err := ExecWithOutput(ctx, opts, "uname", "-n")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
