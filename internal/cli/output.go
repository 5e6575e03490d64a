package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failed (restore failed, backup missing, ...)
	ExitCommandError = 2 // Command error (bad settings, unknown adapter, ...)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
	// Reported is set when the message was already written to the output.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool

	in *bufio.Reader
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status  string    `json:"status"` // "ok" or "error"
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Error   *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (f *OutputFormatter) JSON() bool { return f.Format == "json" }

// Success prints message in text mode, or data with message in JSON mode.
func (f *OutputFormatter) Success(data any, message string) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data, Message: message})
	}
	if message != "" {
		fmt.Fprintln(f.Writer, message)
	}
	return nil
}

// Error prints a failure. code is a short machine-readable identifier.
func (f *OutputFormatter) Error(code, message string) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	fmt.Fprintln(f.Writer, message)
	return nil
}

// Fail reports the failure like Error and returns an ExitError carrying
// code, marked as already reported.
func (f *OutputFormatter) Fail(exitCode int, code, message string) error {
	_ = f.Error(code, message)
	return &ExitError{Code: exitCode, Message: message, Reported: true}
}

// Table renders rows under headers in text mode.
func (f *OutputFormatter) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(f.Writer, t.Render())
}

// Info prints a line in text mode only.
func (f *OutputFormatter) Info(message string) {
	if f.JSON() || message == "" {
		return
	}
	fmt.Fprintln(f.Writer, message)
}

// Confirm asks a yes/no question on in, defaulting to no. In JSON mode an
// unattended answer is required, so it returns false unless assumeYes.
func (f *OutputFormatter) Confirm(in io.Reader, question, hint string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	if f.JSON() {
		return false
	}
	fmt.Fprintf(f.Writer, "%s %s ", question, hint)
	if f.in == nil {
		f.in = bufio.NewReader(in)
	}
	line, err := f.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(f.Writer)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
