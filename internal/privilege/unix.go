//go:build !windows

package privilege

import (
	"errors"
	"os"
)

// IsElevated reports whether the process runs as root.
func IsElevated() bool { return os.Geteuid() == 0 }

// AttemptElevate cannot relaunch on this platform; run the binary with sudo.
func AttemptElevate() (bool, error) {
	if _, err := executable(); err != nil {
		return false, err
	}
	return false, errors.New("automatic elevation is not supported here; re-run with sudo")
}
