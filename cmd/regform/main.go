// Command regform serves the registration form over HTTP or runs it as
// terminal prompts.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until a subcommand configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
