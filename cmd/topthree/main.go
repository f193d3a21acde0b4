package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/obsidianstack/topthree/internal/config"
	"github.com/obsidianstack/topthree/internal/logging"
	"github.com/obsidianstack/topthree/internal/pipeline"
	"github.com/obsidianstack/topthree/internal/table"
	"github.com/obsidianstack/topthree/internal/watch"
)

const version = "0.1.0"

const usageLine = "Usage: topthree [-config file] [-watch] <csv_file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program minus os.Exit. Every failure is reported once on
// stderr and mapped to exit code 1.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("topthree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to an optional YAML config file")
	watchInput := fs.Bool("watch", false, "re-render whenever the input file changes")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Prints the top three rows by division, then points, as YAML.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "topthree %s\n", version)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usageLine)
		return 1
	}
	path := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	logging.Setup(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.Debug("topthree starting", "input", path, "config", *configPath, "watch", *watchInput)

	p := pipeline.New(cfg, stdout)
	if err := p.Run(path); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}

	if !*watchInput {
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := watch.File(ctx, path, func() {
		if err := p.Run(path); err != nil {
			slog.Warn("re-run failed, previous output stands", "input", path, "err", err)
		}
	})
	if err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	slog.Info("topthree shutting down")
	return 0
}

// describe turns a pipeline error into its one-line console message.
// Categorised load errors already read as messages; anything else keeps
// its underlying text behind a generic prefix.
func describe(err error) string {
	switch {
	case errors.Is(err, table.ErrFileNotFound),
		errors.Is(err, table.ErrMalformedInput),
		errors.Is(err, table.ErrTypeCoercion),
		errors.Is(err, table.ErrNoRecords):
		return err.Error()
	default:
		return "an error occurred: " + err.Error()
	}
}
