// Command tasks manages a task list stored beside the executable.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/tasks-go/cmd"
	"github.com/nibzard/tasks-go/internal/logging"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Run the CLI
	if err := cmd.Run(ctx, os.Args[1:]); err != nil {
		logger := logging.New(os.Stderr, logging.DefaultOptions())
		if ctx.Err() != nil {
			logger.Error("interrupted")
			os.Exit(cmd.ExitInterrupted)
		}
		logger.Error(err.Error(), "kind", cmd.Kind(err))
		os.Exit(cmd.ExitCode(err))
	}
}
