package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List hosts declared in the config",
	Long: `List every literal host alias in the rule file together with the host
it resolves to. Wildcard and negated patterns are not listed.`,
	Args: cobra.NoArgs,
	RunE: runHosts,
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}

func runHosts(cmd *cobra.Command, args []string) error {
	results, err := resolveAll()
	if err != nil {
		return err
	}

	if len(results) == 0 {
		logInfo("No hosts declared.")
		return nil
	}

	width := 0
	for _, r := range results {
		width = max(width, len(r.Host))
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-*s  %s\n", width, r.Host, r.Target())
	}
	return nil
}
