// Package tui provides the interactive host picker for forage-ssh.
//
// The picker lists every literal host from the loaded configuration,
// grouped under the most specific wildcard rule that applies to it:
//
//	result, err := tui.RunPicker(hosts)
//	switch result.Action {
//	case tui.ActionConnect:
//	    // ssh to result.Host
//	case tui.ActionPrint:
//	    // print the resolved parameters of result.Host
//	case tui.ActionQuit:
//	    // exit
//	}
//
// # Picker Features
//
//   - Hosts grouped by wildcard rule ("Host *.internal"), headers auto-skipped
//   - Keyboard navigation (j/k or arrows) and filtering on alias or target
//   - Quick actions: Enter (connect), p (print parameters), q (quit)
//
// SimplePicker renders the same list as plain text for non-interactive use.
package tui
