package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// NewAdaptersCommand lists display adapters.
func NewAdaptersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "adapters",
		Aliases: []string{"ls"},
		Short:   "List display adapters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			devs, err := s.app.Adapters()
			if err != nil {
				return WrapExitError(ExitCommandError, s.app.T("errors.unableToOpenRegistry"), err)
			}
			if len(devs) == 0 {
				return s.out.Error("no_adapters", s.app.T("errors.noAdaptersFound"))
			}
			if s.out.JSON() {
				return s.out.Success(devs, "")
			}
			rows := make([][]string, len(devs))
			for i, d := range devs {
				rows[i] = []string{strconv.Itoa(i + 1), d.DeviceID, d.CurrentName}
			}
			s.out.Table([]string{s.app.T("table.no"), s.app.T("table.deviceId"), s.app.T("table.currentName")}, rows)
			return nil
		},
	}
}
