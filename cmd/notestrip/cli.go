package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/notestrip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Filter notestrip.Filter
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" help:"Copy chapters to the full-notes tree and strip hidden sections from the chapters tree"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Source      string `short:"s" default:"docs/chapters" help:"Chapter source directory"`
	FullNotes   string `default:"docs/full-notes" help:"Unfiltered mirror output directory"`
	Chapters    string `help:"Filtered output directory (defaults to the source directory, filtering in place)"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent entry limit"`
	Verbose     bool   `short:"v" help:"Enable debug logging on stderr"`
}
