package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/USA-RedDragon/greatcircle/cmd"
	"github.com/joho/godotenv"
)

//nolint:golint,gochecknoglobals
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Variables from .env never override ones already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err.Error())
	}

	rootCmd := cmd.NewCommand(version, commit)
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Encountered an error.", "error", err.Error())
		os.Exit(1)
	}
}
