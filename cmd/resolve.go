package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/render"
)

var (
	resolveFormat  string
	resolveExplain bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <host>",
	Short: "Print the effective parameters for a host",
	Long: `Resolve the effective SSH parameters for a host and print them.

Formats:
  text  aligned Keyword value lines (default)
  json  a JSON object with host, target and params
  yaml  a one-rule YAML document
  toml  a one-rule TOML document
  ssh   a Host block in ssh_config syntax

With --explain, each value is annotated with the rule that supplied it.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "o", string(render.FormatText), "Output format (text, json, yaml, toml, ssh)")
	resolveCmd.Flags().BoolVar(&resolveExplain, "explain", false, "Show the rule that supplied each value")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(resolveFormat)
	if err != nil {
		return errors.ValidationError(err.Error())
	}

	res, err := resolveHost(args[0])
	if err != nil {
		return err
	}

	logging.Debug("resolved host", "host", res.Host, "target", res.Target(), "layers", len(res.Layers))

	if err := render.Write(cmd.OutOrStdout(), res, format, render.Options{Explain: resolveExplain}); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	return nil
}
