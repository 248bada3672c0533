package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/orchestraigo/internal/app"
	"github.com/specialistvlad/orchestraigo/internal/cli"
)

// main is the entrypoint for the orchestraigo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Execute(ctx, args, outW, perform)
}

// perform builds the app and plays the score once. The app panics on
// critical startup errors, so we recover here to return a clean error.
func perform(ctx context.Context, outW io.Writer, cfg *app.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	orchestra := app.NewApp(outW, cfg, nil)
	defer func() {
		if cerr := orchestra.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = orchestra.Run(ctx)
	return err
}
