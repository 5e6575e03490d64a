package cli

import (
	"time"

	"danc/internal/models"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

// NewBackupsCommand groups the backup management subcommands. Without a
// subcommand it lists backups.
func NewBackupsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "backups",
		Aliases: []string{"backup"},
		Short:   "Manage backups of original adapter names",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupList(cmd, opts)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all backups, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackupList(cmd, opts)
		},
	})
	cmd.AddCommand(newBackupShowCommand(opts))
	cmd.AddCommand(newBackupRestoreCommand(opts))
	cmd.AddCommand(newBackupDeleteCommand(opts))
	return cmd
}

func runBackupList(cmd *cobra.Command, opts *RootOptions) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	list := s.app.Ledger.List()
	if s.out.JSON() {
		if list == nil {
			list = []models.BackupSummary{}
		}
		return s.out.Success(list, "")
	}
	if len(list) == 0 {
		s.out.Info(s.app.T("errors.noBackupsFound"))
		return nil
	}
	s.out.Table(backupHeaders(s), backupRows(list))
	return nil
}

func backupHeaders(s *session) []string {
	t := s.app.T
	return []string{t("table.backupId"), t("table.deviceId"), t("table.originalName"), t("table.createdTime")}
}

func backupRows(list []models.BackupSummary) [][]string {
	rows := make([][]string, len(list))
	for i, b := range list {
		rows[i] = []string{b.BackupID, b.DeviceID, b.OriginalName, formatTime(b.CreatedTime)}
	}
	return rows
}

func formatTime(t time.Time) string { return t.Local().Format(timeLayout) }

func newBackupShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <backup id>",
		Short: "Show one backup including its registry path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, ok := s.app.Ledger.FindByID(args[0])
			if !ok {
				return s.out.Fail(ExitFailure, "not_found", s.app.T("errors.backupNotFound"))
			}
			if s.out.JSON() {
				return s.out.Success(rec, "")
			}
			t := s.app.T
			s.out.Table([]string{"", ""}, [][]string{
				{t("table.backupId"), rec.BackupID},
				{t("table.deviceId"), rec.DeviceID},
				{"Instance ID", rec.InstanceID},
				{"Registry Path", rec.RegistryPath},
				{t("table.originalName"), rec.OriginalName},
				{t("table.createdTime"), formatTime(rec.CreatedTime)},
			})
			return nil
		},
	}
}

func newBackupRestoreCommand(opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore <backup id>",
		Short: "Write a backup's original name back to its adapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := requireElevation(s); err != nil {
				return err
			}
			t := s.app.T
			id := args[0]

			if _, ok := s.app.Ledger.FindByID(id); !ok {
				return s.out.Fail(ExitFailure, "not_found", t("errors.backupNotFound"))
			}
			if !s.out.Confirm(cmd.InOrStdin(), t("confirm.restoreBackup", id), t("confirm.yesNo"), yes) {
				return s.out.Error("cancelled", t("adapter.operationCancelled"))
			}
			if !s.app.Restore(id) {
				return s.out.Fail(ExitFailure, "restore_failed", t("errors.restoreFailed"))
			}
			s.out.Info(t("adapter.noteRestart"))
			return s.out.Success(map[string]string{"backup_id": id}, t("success.backupRestored"))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newBackupDeleteCommand(opts *RootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <backup id>",
		Aliases: []string{"rm"},
		Short:   "Delete a backup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			t := s.app.T
			id := args[0]

			if _, ok := s.app.Ledger.FindByID(id); !ok {
				return s.out.Fail(ExitFailure, "not_found", t("errors.backupNotFound"))
			}
			if !s.out.Confirm(cmd.InOrStdin(), t("confirm.deleteBackup", id), t("confirm.yesNo"), yes) {
				return s.out.Error("cancelled", t("adapter.operationCancelled"))
			}
			if !s.app.Delete(id) {
				return s.out.Fail(ExitFailure, "delete_failed", t("errors.deleteFailed"))
			}
			return s.out.Success(map[string]string{"backup_id": id}, t("success.backupDeleted"))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
