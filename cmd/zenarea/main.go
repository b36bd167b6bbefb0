// Package main is the entry point for the zenarea terminal editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/zenarea/internal/app"
	"github.com/dshills/zenarea/internal/input/keymap"
	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/manager"
	"github.com/dshills/zenarea/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	app        app.Options
	logLevel   string
	logFile    string
	dumpKeymap bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	closeLog, err := setupLogging(f.logLevel, f.logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if f.dumpKeymap {
		if err := dumpKeymap(f.app.KeymapPath, f.app.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(f.app, screen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends logs to path. The terminal belongs to the editor, so
// without a path logs are dropped.
func setupLogging(level, path string) (func(), error) {
	if path == "" {
		log.Setup(level, io.Discard)
		return func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.Setup(level, file)
	return func() { file.Close() }, nil
}

// dumpKeymap prints the effective shortcut table as JSON.
func dumpKeymap(keymapPath, scriptPath string) error {
	var libOpts []lua.Option
	if scriptPath != "" {
		libOpts = append(libOpts, lua.WithScriptFile(scriptPath))
	}
	lib, err := lua.NewLibrary(libOpts...)
	if err != nil {
		return err
	}
	defer lib.Close()

	m, err := manager.New(lib)
	if err != nil {
		return err
	}
	if keymapPath != "" {
		km, err := keymap.LoadFile(keymapPath)
		if err != nil {
			return err
		}
		if err := m.ApplyKeymap(km); err != nil {
			return err
		}
	}

	data, err := m.Keymap("active").MarshalJSON()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.app.ConfigPath, "config", "", "Path to options file (TOML)")
	flag.StringVar(&f.app.ConfigPath, "c", "", "Path to options file (shorthand)")
	flag.StringVar(&f.app.KeymapPath, "keymap", "", "Path to keymap file (JSON or YAML)")
	flag.StringVar(&f.app.KeymapPath, "k", "", "Path to keymap file (shorthand)")
	flag.StringVar(&f.app.ScriptPath, "script", "", "Lua script overriding the default actions")
	flag.StringVar(&f.app.Class, "class", "zc-profile-xhtml", "Marker attribute of the editor area")
	flag.BoolVar(&f.app.AltAsMeta, "alt-meta", true, "Treat the Alt key as Meta")
	flag.BoolVar(&f.app.Watch, "watch", false, "Re-apply the options file when it changes")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&f.dumpKeymap, "dump-keymap", false, "Print the effective keymap as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "zenarea - abbreviation shortcuts for text areas\n\n")
		fmt.Fprintf(os.Stderr, "Usage: zenarea [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  zenarea                                  Empty editor area\n")
		fmt.Fprintf(os.Stderr, "  zenarea -class 'zc-syntax-css' a.css     Edit a.css's text with CSS expansion\n")
		fmt.Fprintf(os.Stderr, "  zenarea -keymap keys.yaml -dump-keymap   Show the merged shortcut table\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("zenarea %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch f.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		f.app.Text = string(data)
	}

	return f
}
