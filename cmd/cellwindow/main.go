// Package main is the entry point for the cellwindow demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/cellwindow/internal/adapter"
	"github.com/dshills/cellwindow/internal/config"
	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/input"
	"github.com/dshills/cellwindow/internal/logging"
	"github.com/dshills/cellwindow/internal/loop"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	Demo       string
	LogLevel   string
	LogFile    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	d, err := newDemo(opts.Demo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := console.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	win, err := adapter.New(cfg.Settings(), adapter.WithConsole(term), adapter.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := win.Close(); err != nil {
			logger.Warn("closing window: %v", err)
		}
	}()

	fg, bg, _ := cfg.Colors()
	win.SetDrawColor(fg, bg)

	// Handle signals sent from outside; Ctrl+C on the tty is a key press
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			term.RequestClose()
		}
	}()

	var watcher *config.Watcher
	if opts.ConfigPath != "" {
		watcher, err = config.NewWatcher(opts.ConfigPath, config.WithWatcherLogger(logger))
		if err != nil {
			logger.Warn("live reload disabled: %v", err)
		} else {
			defer func() {
				if err := watcher.Close(); err != nil {
					logger.Warn("closing config watcher: %v", err)
				}
			}()
		}
	}

	events := loop.New().UPS(cfg.Loop.UPS).MaxFPS(cfg.Loop.MaxFPS)
	ctx := context.Background()

	logger.Info("running %s demo", opts.Demo)
	for {
		ev, ok := events.Next(ctx, win)
		if !ok {
			break
		}

		if watcher != nil {
			applyReload(win, watcher, logger)
		}

		switch ev.Kind {
		case loop.KindInput:
			handleInput(win, d, ev.Input, logger)
		case loop.KindUpdate:
			d.update(ev.Dt)
		case loop.KindRender:
			win.Clear()
			d.render(win, events.Stats())
		}
	}

	stats := events.Stats()
	logger.Info("exiting after %d updates, %d renders, %d inputs", stats.Updates, stats.Renders, stats.Inputs)
	if n := win.DecodeFailures(); n > 0 {
		logger.Debug("%d native events had no generic equivalent", n)
	}
	return 0
}

// handleInput closes the window on Ctrl+C and passes anything else to d.
func handleInput(win *adapter.Adapter, d demo, ev input.Event, logger *logging.Logger) {
	if isInterrupt(ev) {
		logger.Debug("ctrl+c pressed, closing")
		win.SetShouldClose(true)
		return
	}
	d.input(ev)
}

// applyReload applies the window settings that can change while running.
func applyReload(win *adapter.Adapter, w *config.Watcher, logger *logging.Logger) {
	select {
	case cfg := <-w.Changes():
		win.SetTitle(cfg.Window.Title)
		win.SetExitOnEsc(cfg.Window.ExitOnEsc)
		if fg, bg, err := cfg.Colors(); err == nil {
			win.SetDrawColor(fg, bg)
		}
		logger.Info("applied reloaded configuration")
	case err := <-w.Errors():
		logger.Warn("ignoring configuration change: %v", err)
	default:
	}
}

func openLogger(cfg config.LoggingConfig) (*logging.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: closing log file: %v\n", err)
			}
		}
	}
	lc.Output = out

	return logging.New(lc), closeFn, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.Demo, "demo", "hello", "Demo to run (hello, mouse, fps)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cellwindow - window back-end demo on a terminal console\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cellwindow [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvVars() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cellwindow                         Show the hello demo\n")
		fmt.Fprintf(os.Stderr, "  cellwindow -demo mouse             Track the mouse\n")
		fmt.Fprintf(os.Stderr, "  cellwindow -c cellwindow.toml      Use a config file with live reload\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("cellwindow %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	if opts.LogLevel != "" && !logging.ValidLevel(opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
