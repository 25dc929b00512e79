package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/holonet/internal/config"
	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/listing"
	"github.com/mmcdole/holonet/internal/log"
	"github.com/mmcdole/holonet/internal/search"
	"github.com/mmcdole/holonet/internal/swapi"
	"github.com/mmcdole/holonet/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

type options struct {
	configPath string
	plain      bool
	query      string
	initConfig bool
}

func main() {
	var (
		showVersion bool
		opts        options
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&opts.configPath, "config", "", "config file `path` (default ~/.config/holonet/config.yaml)")
	flag.BoolVar(&opts.plain, "plain", false, "print a table instead of starting the interactive browser")
	flag.StringVar(&opts.query, "search", "", "search starships by `name` on startup")
	flag.BoolVar(&opts.initConfig, "init-config", false, "write the default config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("holonet %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.initConfig {
		path, err := config.SaveConfig(config.DefaultConfig(), opts.configPath)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	}

	// Load configuration
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting holonet", "version", Version, "base_url", cfg.API.BaseURL)

	client, err := swapi.NewClient(cfg.API.BaseURL, logger,
		swapi.WithTimeout(cfg.API.Timeout),
		swapi.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	controller := listing.NewController(client, nil, listing.Options{
		Kind:       domain.ResourceFilms,
		SearchKind: domain.ResourceStarships,
		Timeout:    cfg.API.Timeout,
		Logger:     logger,
	})

	if opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logger.Info("running in plain mode", "query", opts.query)
		return tui.RunPlain(ctx, controller, os.Stdout, opts.query)
	}

	model := tui.NewModel(controller, tui.Options{
		FilterMode:    search.Mode(cfg.UI.FilterMode),
		ShowPreview:   cfg.UI.ShowDetails,
		InitialSearch: opts.query,
		Logger:        logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
