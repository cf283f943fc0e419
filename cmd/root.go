package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
)

var (
	configFile  string
	strictParse bool
	verbose     bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "forage-ssh",
	Short: "Layered SSH host parameter resolution",
	Long: `forage-ssh resolves the effective SSH parameters for a host from layered
host rules and hands them to ssh.

Rules are read from an ssh_config file (default ~/.ssh/config, or $` + config.EnvConfigPath + `)
or from a TOML/YAML rule document. The first matching rule to set a value
wins; a trailing "Host *" block supplies the defaults.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	SilenceErrors: true,
}

// Execute runs the root command and reports any error to the user.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "F", "", "Host rule file (ssh_config, .toml or .yaml)")
	rootCmd.PersistentFlags().BoolVar(&strictParse, "strict", false, "Reject ssh_config keywords forage-ssh does not interpret")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
