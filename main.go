package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/exlog/internal/config"
	"github.com/sadopc/exlog/internal/logging"
	"github.com/sadopc/exlog/internal/store"
	"github.com/sadopc/exlog/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, logCloser := logging.Setup(cfg.Log)
	defer logCloser.Close()

	s, err := store.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	log.WithField("config", *configPath).Info("starting exlog")

	app := tui.NewApp(s, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Info("exlog stopped")
}
