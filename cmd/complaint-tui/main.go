package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/chat"
	"github.com/grievance-labs/complaintbot/internal/chat/client"
	"github.com/grievance-labs/complaintbot/internal/chat/tui"
	"github.com/grievance-labs/complaintbot/internal/config"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	apiClient := client.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSecs)*time.Second)
	answerer := buildAnswerer(cfg, logger)
	controller := chat.NewController(apiClient, answerer, logger)

	m := tui.New(controller)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
