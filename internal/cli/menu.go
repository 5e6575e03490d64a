package cli

import (
	"fmt"

	"danc/internal/config"
	"danc/internal/logger"
	"danc/internal/privilege"
	"danc/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runMenu starts the interactive menu, relaunching elevated first when the
// registry is the device source.
func runMenu(cmd *cobra.Command, opts *RootOptions) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	t := s.app.T
	w := cmd.ErrOrStderr()

	if s.cfg.DeviceSource == config.SourceRegistry && s.cfg.Elevate && !privilege.IsElevated() {
		fmt.Fprintln(w, t("errors.adminRequired"))
		fmt.Fprintln(w, t("errors.restartingAsAdmin"))
		relaunched, err := privilege.AttemptElevate()
		if relaunched {
			logger.Info("menu: handed over to elevated process")
			return nil
		}
		logger.Errorf("menu: elevation failed: %v", err)
		fmt.Fprintln(w, t("errors.restartFailed"))
		return WrapExitError(ExitCommandError, t("errors.runAsAdmin"), err)
	}

	if err := ui.Run(s.app,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	); err != nil {
		return WrapExitError(ExitFailure, "menu", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t("success.goodbye"))
	return nil
}
