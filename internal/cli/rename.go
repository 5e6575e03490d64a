package cli

import (
	"errors"
	"strings"

	"danc/internal/app"
	"danc/internal/config"
	"danc/internal/device"
	"danc/internal/privilege"

	"github.com/spf13/cobra"
)

type renameOptions struct {
	*RootOptions
	Yes   bool
	Force bool
}

// NewRenameCommand renames one adapter, backing up its original name first.
func NewRenameCommand(root *RootOptions) *cobra.Command {
	opts := &renameOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "rename <adapter> <new name>",
		Short: "Rename a display adapter",
		Long: `Rename a display adapter. <adapter> is the number shown by "danc adapters",
a device key (deviceId_instanceId) or a device id. The original name is backed
up the first time a device is renamed and is never overwritten afterwards.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, opts, args[0], strings.Join(args[1:], " "))
		},
	}
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "do not ask for confirmation")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "rename even if the backup cannot be created")
	return cmd
}

func runRename(cmd *cobra.Command, opts *renameOptions, ref, newName string) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := requireElevation(s); err != nil {
		return err
	}
	t := s.app.T

	dev, err := s.app.FindAdapter(ref)
	if err != nil {
		if errors.Is(err, app.ErrAdapterUnknown) {
			return WrapExitError(ExitCommandError, t("errors.adapterNotFound", ref), err)
		}
		return WrapExitError(ExitCommandError, t("errors.unableToOpenRegistry"), err)
	}
	if strings.TrimSpace(newName) == "" {
		return NewExitError(ExitCommandError, t("errors.nameEmpty"))
	}

	s.out.Info(t("adapter.currentName") + " " + dev.CurrentName)
	if !s.out.Confirm(cmd.InOrStdin(), t("adapter.confirmChange", newName), t("confirm.yesNo"), opts.Yes) {
		return s.out.Error("cancelled", t("adapter.operationCancelled"))
	}

	res, err := s.app.Rename(dev, newName, opts.Force)
	if errors.Is(err, app.ErrBackupFailed) {
		if !s.out.Confirm(cmd.InOrStdin(), t("adapter.backupFailed"), t("confirm.yesNo"), false) {
			return s.out.Error("cancelled", t("adapter.operationCancelled"))
		}
		res, err = s.app.Rename(dev, newName, true)
	}
	if errors.Is(err, device.ErrNotFound) {
		return WrapExitError(ExitFailure, t("errors.deviceRemoved"), err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, t("errors.modificationFailed"), err)
	}

	switch {
	case res.BackupID == "":
	case res.NewBackup:
		s.out.Info(t("adapter.backupCreated", res.BackupID))
	default:
		s.out.Info(t("adapter.usingExistingBackup"))
	}
	s.out.Info(t("adapter.noteRestart"))
	return s.out.Success(res, t("adapter.nameModified"))
}

// requireElevation stops registry writes early when the process lacks
// administrator rights.
func requireElevation(s *session) error {
	if s.cfg.DeviceSource != config.SourceRegistry || !s.cfg.Elevate || privilege.IsElevated() {
		return nil
	}
	s.out.Info(s.app.T("errors.runAsAdmin"))
	return NewExitError(ExitCommandError, s.app.T("errors.adminRequired"))
}
