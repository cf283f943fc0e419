package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	argsUser         string
	argsPort         int
	argsNoUserConfig bool
)

var argsCmd = &cobra.Command{
	Use:   "args <host> [-- command...]",
	Short: "Print the ssh command line for a host",
	Long: `Print a shell-quoted ssh command line that passes every resolved
parameter as an -o option.

Examples:
  forage-ssh args bastion
  forage-ssh args bastion -l deploy -- uptime
  forage-ssh args bastion --no-user-config`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArgs,
}

func init() {
	argsCmd.Flags().StringVarP(&argsUser, "user", "l", "", "Login user")
	argsCmd.Flags().IntVarP(&argsPort, "port", "p", 0, "Port")
	argsCmd.Flags().BoolVar(&argsNoUserConfig, "no-user-config", false, "Pass -F /dev/null so ssh applies only the resolved parameters")
	rootCmd.AddCommand(argsCmd)
}

func runArgs(cmd *cobra.Command, args []string) error {
	res, err := resolveHost(args[0])
	if err != nil {
		return err
	}

	opts, err := sshOptions(res, argsUser, argsPort, argsNoUserConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), opts.CommandLine(args[1:]...))
	return nil
}
