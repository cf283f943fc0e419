package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/ssh"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive host picker",
	Long: `Opens an interactive TUI for selecting and connecting to hosts.

Use arrow keys or j/k to navigate, / to filter, Enter to connect.

Actions:
  Enter  - Connect to selected host
  p      - Print the resolved parameters of the selected host
  q/Esc  - Quit

Without a terminal the hosts are printed as a plain list.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	hosts, err := resolveAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(hosts) == 0 {
		logInfo("No hosts declared. Add a literal Host entry to list it here.")
		return nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		logging.Debug("no terminal, printing host list")
		fmt.Fprint(out, tui.SimplePicker(hosts))
		return nil
	}

	result, err := tui.RunPicker(hosts)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionConnect:
		if result.Host != nil {
			return connectTo(ssh.OptionsFor(*result.Host))
		}

	case tui.ActionPrint:
		if result.Host != nil {
			return render.Write(out, *result.Host, render.FormatText, render.Options{Explain: true})
		}

	case tui.ActionQuit:
	}

	return nil
}
