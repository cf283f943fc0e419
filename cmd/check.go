package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/ssh"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check <host>",
	Short: "Check that a host is reachable",
	Long: `Run "uname -n" on the host in batch mode using the resolved parameters
and report the name the host answers with.

The resolved ConnectTimeout bounds the attempt; --timeout overrides it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Connect timeout (overrides ConnectTimeout)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkTimeout < 0 {
		return errors.ValidationError("timeout must not be negative")
	}
	if checkTimeout%time.Second != 0 {
		return errors.ValidationError("timeout must be a whole number of seconds")
	}

	res, err := resolveHost(args[0])
	if err != nil {
		return err
	}

	opts := ssh.OptionsFor(res)
	if checkTimeout > 0 {
		opts = opts.WithTimeout(checkTimeout)
	}

	name, err := ssh.CheckConnection(cmd.Context(), opts)
	if err != nil {
		return errors.SSHError(fmt.Sprintf("%s (%s) is not reachable", res.Host, res.Target()), err)
	}

	if name == "" {
		logSuccess("%s (%s) is reachable", res.Host, res.Target())
		return nil
	}
	logSuccess("%s (%s) is reachable, remote answers as %s", res.Host, res.Target(), name)
	return nil
}
