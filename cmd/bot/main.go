package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jaywang922/line-translator-bot/internal/biz"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
	"github.com/jaywang922/line-translator-bot/internal/biz/usecase"
	"github.com/jaywang922/line-translator-bot/internal/conf"
	"github.com/jaywang922/line-translator-bot/internal/data"
	"github.com/jaywang922/line-translator-bot/internal/infra/line"
	"github.com/jaywang922/line-translator-bot/internal/infra/openai"
	"github.com/jaywang922/line-translator-bot/internal/server"
	"github.com/jaywang922/line-translator-bot/internal/service"
	"github.com/jaywang922/line-translator-bot/internal/tts"
)

const expirySweepInterval = 30 * time.Second

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := conf.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize clients
	lineClient, err := line.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelAccessToken)
	if err != nil {
		log.Fatalf("Failed to create LINE client: %v", err)
	}
	translator := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.Prompts.Translate.SystemTemplate)

	// Initialize state and history
	store := data.NewSessionStore()

	var history repo.HistoryRepo
	if h, err := data.NewHistoryRepo(cfg.History.DBPath); err != nil {
		// History is advisory: run without it rather than failing startup.
		fmt.Printf("[Bot] History disabled: %v\n", err)
	} else {
		history = h
		fmt.Printf("[Bot] History DB: %s\n", cfg.History.DBPath)
	}

	var speechLink usecase.SpeechLinkFunc
	if cfg.SpeechLinks {
		speechLink = tts.SpeechURL
		fmt.Println("[Bot] Speech links enabled")
	}

	// Initialize core
	uc := biz.NewUsecases(store, translator, history, speechLink)
	relay := service.NewRelayService(uc.Dispatcher, store, lineClient)

	// Background expiry notices and history cleanup
	retention := time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
	notifier := service.NewExpiryNotifier(store, lineClient, history, expirySweepInterval, retention)
	notifier.Start(context.Background())

	srv := server.NewWebhookServer(lineClient, relay, cfg.Server.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		srv.Stop()
		notifier.Stop()
		if history != nil {
			_ = history.Close()
		}
		os.Exit(0)
	}()

	fmt.Println("Starting LINE translator bot...")
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
