//go:build windows

package privilege

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// AttemptElevate relaunches the current executable with the "runas" verb.
// Returns (relaunched, error). If relaunched is true, caller should exit.
func AttemptElevate() (bool, error) {
	exe, err := executable()
	if err != nil {
		return false, err
	}
	cwd, _ := os.Getwd()

	verb, _ := syscall.UTF16PtrFromString("runas")
	file, err := syscall.UTF16PtrFromString(exe)
	if err != nil {
		return false, err
	}
	args, err := syscall.UTF16PtrFromString(quoteArgs(os.Args[1:]))
	if err != nil {
		return false, err
	}
	dir, _ := syscall.UTF16PtrFromString(cwd)

	if err := windows.ShellExecute(0, verb, file, args, dir, windows.SW_NORMAL); err != nil {
		return false, fmt.Errorf("shell execute: %w", err)
	}
	return true, nil
}

func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = syscall.EscapeArg(a)
	}
	return strings.Join(quoted, " ")
}
