package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/recipekit/internal/cli"
)

// main is the entrypoint for the recipekit command.
func main() {
	// Use a minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run encapsulates the command execution for easier testing.
func run(outW, errW io.Writer, args []string) error {
	root := cli.New(outW, errW)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
