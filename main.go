package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gadgetfind/internal/catalog"
	"gadgetfind/internal/config"
	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/logger"
	"gadgetfind/internal/ui"
	"gadgetfind/internal/ui/handlers"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup finishes before exit
func run() int {
	// Parse command line arguments
	var configPath, catalogPath, query, logPath string
	flag.StringVar(&configPath, "config", "", "Path to the TOML config file")
	flag.StringVar(&configPath, "c", "", "Path to the TOML config file (shorthand)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to a catalog YAML file (default: embedded catalog)")
	flag.StringVar(&query, "query", "", "Initial search query")
	flag.StringVar(&query, "q", "", "Initial search query (shorthand)")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.Parse()

	// Load configuration, falling back to defaults
	configSvc := config.NewConfigServiceWithPath(configPath)
	cfg, cfgErr := configSvc.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	if strings.TrimSpace(logPath) != "" {
		cfg.LogFile = logPath
	}
	if strings.TrimSpace(catalogPath) != "" {
		cfg.CatalogPath = catalogPath
	}

	// Set up logging
	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting gadgetfind", zap.String("config", configSvc.Path()))
	if cfgErr != nil {
		log.Warn("failed to load config, using defaults", zap.Error(cfgErr))
	}

	// Create event bus
	bus := eventbus.New(log)
	defer bus.Close()
	unsubscribeLogger := handlers.SubscribeLogger(bus, log)
	defer unsubscribeLogger()

	if cfgErr == nil {
		bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path(), CatalogPath: cfg.CatalogPath})
	}

	cat, source, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("failed to load catalog", zap.String("source", source), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return 1
	}
	log.Info("catalog ready", zap.String("source", source), zap.Int("items", cat.Len()))

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, cat, log)
	uiModel.SetInitialQuery(query)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward events the UI shows to the program
	for _, t := range handlers.UIEvents {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
		defer unsubscribe()
	}

	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, ItemCount: cat.Len()})

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Error("error running program", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Info("UI exited normally")
	return 0
}
