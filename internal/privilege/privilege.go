// Package privilege checks for and requests the rights needed to write the
// device registry.
package privilege

import (
	"errors"
	"os"
	"strings"
)

// ErrGoRun is returned when the binary is a `go run` build and would be
// relaunched into a temp directory that no longer exists.
var ErrGoRun = errors.New("cannot elevate in go run mode; build the binary first")

func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	lower := strings.ToLower(exe)
	if strings.Contains(lower, "go-build") {
		return "", ErrGoRun
	}
	return exe, nil
}
