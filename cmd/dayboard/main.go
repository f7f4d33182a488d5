package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"dayboard/internal/api"
	"dayboard/internal/config"
	"dayboard/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "path to a dayboard.toml config file")
	server := flag.String("server", "", "backend base URL (overrides config)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dayboard needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.ServerURL = *server
	}
	tui.SetTheme(cfg.Theme)

	client := api.NewHTTP(cfg.ServerURL, &http.Client{Timeout: cfg.RequestTimeout()})
	model := tui.NewDashboardModel(client, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
