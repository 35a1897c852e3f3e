// Command pepper is the server-side entry point: it wires together the
// buffer collection, view registry, event queue, and command registry,
// loads whatever files were named on the command line into views for
// client 0, and drains the event queue for one tick of the main loop. It has
// no terminal frontend of its own; a client talks to this process over
// whatever transport embeds these packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pepperedit/core/internal/command"
	"github.com/pepperedit/core/internal/config"
	"github.com/pepperedit/core/internal/editor"
	"github.com/pepperedit/core/internal/elog"
	"github.com/pepperedit/core/internal/eventqueue"
	"github.com/pepperedit/core/internal/view"
)

var (
	version = "dev"
)

type options struct {
	configPath string
	logLevel   string
	files      []string
}

func main() {
	os.Exit(run(parseFlags()))
}

func run(opts options) int {
	logger := elog.New(elog.Config{Level: elog.ParseLevel(opts.logLevel), Output: os.Stderr, Prefix: "pepper"})

	settings := loadSettings(opts.configPath, logger)

	buffers := editor.NewCollection()
	views := view.NewRegistry()
	events := eventqueue.New()
	commands := registerBuiltins(buffers, events, logger)

	const client view.ClientID = 0
	for _, path := range opts.files {
		if _, err := views.ViewHandleFromPath(client, buffers, path, nil); err != nil {
			fmt.Fprintf(os.Stderr, "pepper: failed to open %s: %v\n", path, err)
			return 1
		}
		logger.Info("opened %s", path)
	}

	tabWidth := settings.Int("editor", "tabwidth", 4)
	logger.WithComponent("config").Debug("tabwidth=%d", tabWidth)

	drainEvents(views, events, buffers, logger)

	_ = commands
	return 0
}

func loadSettings(path string, logger *elog.Logger) *config.Settings {
	if path == "" {
		s, _ := config.Parse("")
		return s
	}
	settings, err := config.Load(path)
	if err != nil {
		logger.Warn("failed to load config %s: %v", path, err)
		s, _ := config.Parse("")
		return s
	}
	return settings
}

// registerBuiltins installs the editor's command-line-mode commands
// ":write" and ":quit". Both handlers only log the parsed invocation;
// neither writes, cleans, or otherwise touches a buffer.
func registerBuiltins(buffers *editor.Collection, events *eventqueue.Queue, logger *elog.Logger) *command.Registry {
	registry := command.NewRegistry()

	_ = registry.Register(command.Spec{
		Name:      "write",
		BangUsage: "write even if the buffer has no backing path",
		Params:    []string{"path"},
		Handler: func(cmd command.ParsedCommand) error {
			logger.Info("write %v bang=%v", cmd.Args, cmd.Bang)
			return nil
		},
	})

	_ = registry.Register(command.Spec{
		Name:   "quit",
		Params: nil,
		Handler: func(cmd command.ParsedCommand) error {
			logger.Info("quit")
			return nil
		},
	})

	return registry
}

// drainEvents performs one main-loop tick: fan out every queued buffer
// mutation to the views watching it, then free any buffers that were
// closed during the tick.
func drainEvents(views *view.Registry, events *eventqueue.Queue, buffers *editor.Collection, logger *elog.Logger) {
	for _, e := range events.Drain() {
		switch e.Kind {
		case eventqueue.BufferInsert:
			views.OnBufferInsertText(e.Buffer, e.Range)
		case eventqueue.BufferDelete:
			views.OnBufferDeleteText(e.Buffer, e.Range)
		case eventqueue.BufferLoad:
			logger.Debug("buffer %d loaded", e.Buffer)
		case eventqueue.BufferClose:
			buffers.DeferRemove(e.Buffer)
		}
	}
	buffers.DrainRemovals()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "path to an INI configuration file")
	flag.StringVar(&opts.configPath, "c", "", "path to an INI configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pepper - editing core server\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pepper [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("pepper %s\n", version)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
