package cmd

import (
	"context"
	"errors"

	"github.com/nibzard/tasks-go/internal/todo"
)

// Exit codes returned by ExitCode.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitOutOfRange  = 3
	ExitCorrupt     = 4
	ExitInterrupted = 130
)

// UsageError reports a missing or malformed command argument.
type UsageError struct {
	Command string
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageError(command, message string) error {
	return &UsageError{Command: command, Message: message}
}

// Kind names the category of err for diagnostics.
func Kind(err error) string {
	var usage *UsageError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &usage):
		return "usage"
	case errors.Is(err, todo.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, todo.ErrCorrupt):
		return "corrupt_storage"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "interrupted"
	default:
		return "failure"
	}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch Kind(err) {
	case "":
		return ExitOK
	case "usage":
		return ExitUsage
	case "out_of_range":
		return ExitOutOfRange
	case "corrupt_storage":
		return ExitCorrupt
	case "interrupted":
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
