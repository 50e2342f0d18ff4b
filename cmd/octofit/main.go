// Command octofit browses an OctoFit backend from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/octofit/octofit/internal/cli"
	"github.com/octofit/octofit/pkg/version"
)

// Exit codes.
const (
	exitOK        = 0
	exitError     = 1
	exitInterrupt = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	var viewErr *cli.ViewError
	if err != nil && !errors.As(err, &viewErr) && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupt
	default:
		return exitError
	}
}
