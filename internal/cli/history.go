package cli

import (
	"danc/internal/journal"

	"github.com/spf13/cobra"
)

// NewHistoryCommand prints the operation journal.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent rename, restore and delete operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			t := s.app.T

			if s.app.Journal == nil {
				return s.out.Error("journal_disabled", t("history.disabled"))
			}
			entries, err := s.app.History(limit)
			if err != nil {
				return WrapExitError(ExitFailure, "read journal", err)
			}
			if s.out.JSON() {
				if entries == nil {
					entries = []journal.Entry{}
				}
				return s.out.Success(entries, "")
			}
			if len(entries) == 0 {
				s.out.Info(t("history.empty"))
				return nil
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				result := t("history.ok")
				if !e.Success {
					result = t("history.failed")
				}
				change := e.NewValue
				if e.OldValue != "" {
					change = e.OldValue + " -> " + e.NewValue
				}
				rows[i] = []string{formatTime(e.CreatedAt), string(e.Action), e.DeviceKey, change, result}
			}
			s.out.Info(t("history.title"))
			s.out.Table([]string{t("history.time"), t("history.action"), t("history.device"), t("history.change"), t("history.result")}, rows)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	return cmd
}
