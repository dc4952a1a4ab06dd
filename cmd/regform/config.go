package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

type config struct {
	Listen   string
	BasePath string
	Debounce time.Duration
	LogLevel string
}

// loadConfig layers an optional YAML file under the command's flags, so a
// flag set on the command line always wins.
func loadConfig(flags *pflag.FlagSet) (config, error) {
	k := koanf.New(".")

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return config{}, fmt.Errorf("load config file %q: %w", configFile, err)
		}
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return config{}, fmt.Errorf("load flags: %w", err)
	}

	return config{
		Listen:   k.String("listen"),
		BasePath: k.String("base-path"),
		Debounce: k.Duration("debounce"),
		LogLevel: k.String("log-level"),
	}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
