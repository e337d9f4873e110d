package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, trigger string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&trigger, "trigger", "", "Dropdown trigger: input or button")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("multiselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceForPath(configPath, nil)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Printf("Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if trigger != "" {
		cfg.Trigger = trigger
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Create event bus; debug mode logs every event
	bus := eventbus.New()
	if cfg.Debug {
		bus = eventbus.NewVerbose()
	}
	configSvc = config.NewConfigServiceForPath(configSvc.Path(), bus)

	// Create UI model
	log.Printf("Creating UI model (trigger=%s, %d items)", cfg.Trigger, len(cfg.Items))
	uiModel := ui.NewModel(bus, cfg, configSvc)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
