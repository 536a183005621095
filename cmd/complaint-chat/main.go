package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/chat"
	"github.com/grievance-labs/complaintbot/internal/chat/client"
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

	// The knowledge pipeline is optional: without it, complaint filing and
	// lookups still work and questions get a degraded response.
	answerer := buildAnswerer(cfg, logger)

	controller := chat.NewController(apiClient, answerer, logger)
	session := chat.NewSession()

	fmt.Println("Welcome to the Complaint Chatbot Assistant!")
	fmt.Println("Type your question, or use the following commands:")
	fmt.Println("  file                 : File a new complaint")
	fmt.Println("  fetch <complaint_id> : Retrieve a complaint by ID")
	fmt.Println("  exit                 : Exit the chatbot")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			fmt.Println("Bot: bye!")
			break
		}

		reply := controller.Handle(context.Background(), session, input)
		fmt.Println("Bot:", reply)
	}
}
