package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/ssh"
)

var (
	connectUser         string
	connectPort         int
	connectNoUserConfig bool
)

var connectCmd = &cobra.Command{
	Use:   "connect <host> [command...]",
	Short: "SSH into a host with the resolved parameters",
	Long: `Replace forage-ssh with an ssh session to the host, passing every
resolved parameter explicitly. A TTY is requested when a command is given.

RemoteForward is not passed on; ssh picks it up from its own config
unless --no-user-config is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConnect,
}

func init() {
	connectCmd.Flags().StringVarP(&connectUser, "user", "l", "", "Login user")
	connectCmd.Flags().IntVarP(&connectPort, "port", "p", 0, "Port")
	connectCmd.Flags().BoolVar(&connectNoUserConfig, "no-user-config", false, "Pass -F /dev/null so ssh applies only the resolved parameters")
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	res, err := resolveHost(args[0])
	if err != nil {
		return err
	}

	opts, err := sshOptions(res, connectUser, connectPort, connectNoUserConfig)
	if err != nil {
		return err
	}

	return connectTo(opts, args[1:]...)
}

func connectTo(opts ssh.Options, command ...string) error {
	logging.Debug("connecting", "host", opts.Alias, "command", command)
	if err := ssh.ReplaceWithSession(opts, command...); err != nil {
		return errors.SSHError("failed to start ssh", err)
	}
	return nil
}
