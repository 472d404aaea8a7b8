// Command newsview shows the latest articles from a feed endpoint in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/newsview/internal/application/settings"
	"github.com/tesso57/newsview/internal/application/usecase"
	"github.com/tesso57/newsview/internal/infrastructure/config"
	"github.com/tesso57/newsview/internal/infrastructure/feed"
	"github.com/tesso57/newsview/internal/infrastructure/logging"
	"github.com/tesso57/newsview/internal/presentation/tui"
)

var version = "dev"

// CLI holds command-line overrides for the persisted settings.
type CLI struct {
	Config   string           `short:"c" type:"path" help:"Path to the config file."`
	Endpoint string           `help:"Feed endpoint URL, overrides the config file."`
	Format   string           `help:"Endpoint payload format (json/rss), overrides the config file."`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("newsview"),
		kong.Description("Terminal viewer for the latest news articles."),
		kong.Vars{"version": version},
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "newsview: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	cfg := applyOverrides(store.Settings, cli)

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	source, err := feed.NewSource(cfg)
	if err != nil {
		return err
	}

	logger.Info("starting newsview",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("format", cfg.Format),
		slog.String("config", store.Path()),
	)

	m := tui.NewModel(cfg, usecase.NewArticleService(source, logger), logger)
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited with error", slog.Any("error", err))
		return err
	}
	return nil
}

func applyOverrides(cfg settings.Settings, cli CLI) settings.Settings {
	if endpoint := strings.TrimSpace(cli.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if format := strings.TrimSpace(cli.Format); format != "" {
		cfg.Format = strings.ToLower(format)
	}
	return cfg
}
