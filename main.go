package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"eventdeck/internal/config"
	"eventdeck/internal/eventbus"
	"eventdeck/internal/loader"
	"eventdeck/internal/ui"
)

func main() {
	var source, configPath, logPath string
	flag.StringVar(&source, "source", "", "URL or path of the events document")
	flag.StringVar(&source, "s", "", "URL or path of the events document (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.StringVar(&logPath, "log", "eventdeck.log", "Log file")
	flag.Parse()

	if source == "" && flag.NArg() > 0 {
		source = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceForPath(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
		config.ApplyEnv(cfg)
	}
	if cfg.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}
	log.Printf("Config loaded from %s", configSvc.Path())

	if source == "" {
		source = cfg.Source
	}
	l := loader.New(source, loader.WithTimeout(cfg.Timeout()))
	loadSvc := loader.NewService(ctx, bus, l)

	uiModel := ui.NewModel(bus, cfg, l.Source())
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward load outcomes to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventLoadStarted, forward)
	bus.Subscribe(eventbus.EventEventsLoaded, forward)
	bus.Subscribe(eventbus.EventLoadFailed, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if os.Getenv("EVENTDECK_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Printf("Starting UI for %s", l.Source())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Stop an in-flight load before the bus goes away
	cancel()
	loadSvc.Wait()
}
