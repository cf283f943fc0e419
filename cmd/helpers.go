package cmd

import (
	"io/fs"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/rules"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/ssh"
)

// rulesPath returns the --config value or the default rule file.
func rulesPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to locate config", err)
	}
	return path, nil
}

// loadRules loads the rule file, mapping failures to ConfigNotFound or
// ParseError.
func loadRules() (*rules.File, error) {
	path, err := rulesPath()
	if err != nil {
		return nil, err
	}

	f, err := config.Load(path, config.LoadOptions{Strict: strictParse})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.ConfigNotFound(path, err)
		}
		return nil, errors.ParseError(path, err)
	}

	for _, line := range f.SkippedMatch {
		logWarning("%s:%d: Match block ignored", path, line)
	}

	logging.Debug("loaded host rules", "path", path, "rules", len(f.Rules))
	return f, nil
}

// resolveHost loads the rule file and resolves host against it.
// Returns NoMatch when no rule applies.
func resolveHost(host string) (resolve.Result, error) {
	if host == "" || strings.ContainsAny(host, " \t") {
		return resolve.Result{}, errors.ValidationError("invalid host name: " + strings.TrimSpace(host))
	}

	f, err := loadRules()
	if err != nil {
		return resolve.Result{}, err
	}

	res := resolve.Resolve(f, host)
	if !res.Matched() {
		return res, errors.NoMatch(host)
	}
	return res, nil
}

// resolveAll resolves every literal host declared in the rule file.
func resolveAll() ([]resolve.Result, error) {
	f, err := loadRules()
	if err != nil {
		return nil, err
	}

	hosts := f.Hosts()
	results := make([]resolve.Result, 0, len(hosts))
	for _, h := range hosts {
		results = append(results, resolve.Resolve(f, h))
	}
	return results, nil
}

// sshOptions builds ssh options for a result, applying -l, -p and
// --no-user-config.
func sshOptions(res resolve.Result, user string, port int, noUserConfig bool) (ssh.Options, error) {
	if port < 0 || port > 65535 {
		return ssh.Options{}, errors.ValidationError("port must be between 1 and 65535")
	}
	opts := ssh.OptionsFor(res).WithUser(user).WithPort(port)
	if noUserConfig {
		opts = opts.WithoutUserConfig()
	}
	return opts, nil
}
