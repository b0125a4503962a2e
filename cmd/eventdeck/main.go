package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eventdeck/internal/cards"
	"eventdeck/internal/config"
	"eventdeck/internal/domain"
	"eventdeck/internal/loader"
	"eventdeck/internal/logic"
	"eventdeck/internal/ui"
	"eventdeck/internal/ui/views"
)

// Renders one page of event cards to stdout without the interactive UI.
func main() {
	var (
		source     string
		configPath string
		filter     string
		search     string
		width      int
		timeout    time.Duration
		usePager   bool
		verbose    bool
	)
	flag.StringVar(&source, "source", "", "URL or path of the events document")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&filter, "filter", string(domain.FilterAll), "Status filter: all, current, upcoming or past")
	flag.StringVar(&search, "search", "", "Search text; overrides the filter when not blank")
	flag.IntVar(&width, "width", 80, "Output width")
	flag.DurationVar(&timeout, "timeout", 0, "Load timeout, 0 uses the configured one")
	flag.BoolVar(&usePager, "pager", false, "Show the page in a pager")
	flag.BoolVar(&verbose, "v", false, "Log to stderr")
	flag.Parse()

	log.SetOutput(io.Discard)
	if verbose {
		log.SetOutput(os.Stderr)
	}

	cfg := loadConfig(configPath)
	if source == "" {
		source = cfg.Source
	}
	if timeout == 0 {
		timeout = cfg.Timeout()
	}

	key, err := logic.ParseFilterKey(filter)
	if err != nil {
		// unknown filters show everything
		log.Printf("%v, showing all events", err)
		key = domain.FilterAll
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	renderer := views.NewRenderer(cfg.UISettings.CardWidth, cfg.UISettings.ShowDescription)

	events, err := loader.New(source, loader.WithTimeout(timeout)).Load(ctx)
	if err != nil {
		fmt.Println(renderer.RenderPage(cards.LoadErrorPage(), width))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	page := cards.ForSelector(events, domain.Selector{Filter: key, Query: logic.NormalizeQuery(search)})
	out := renderer.RenderPage(page, width)

	if usePager {
		if err := ui.RunPager(strings.NewReader(out)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running pager: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(out)
}

// loadConfig reads the config file the way the interactive UI does, falling
// back to the defaults when it cannot be read
func loadConfig(path string) *config.Config {
	configSvc := config.NewConfigService()
	if path != "" {
		configSvc = config.NewConfigServiceForPath(path, nil)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
		config.ApplyEnv(cfg)
	}
	log.Printf("Config loaded from %s", configSvc.Path())
	return cfg
}
