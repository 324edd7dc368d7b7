package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vibes-run/leadchat/internal/api"
	"github.com/vibes-run/leadchat/internal/config"
	"github.com/vibes-run/leadchat/internal/email"
	"github.com/vibes-run/leadchat/internal/lead"
	"github.com/vibes-run/leadchat/internal/llm"
	"github.com/vibes-run/leadchat/internal/repository"
	"github.com/vibes-run/leadchat/internal/service"
	"go.uber.org/zap"
)

const answerCacheTTL = 24 * time.Hour

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	waitlistRepo := repository.NewWaitlistRepository(db)

	// Completion client and lead extractor
	completer := llm.NewClient(cfg.Anthropic)
	extractor := lead.NewExtractor(completer, logger)

	// Lead notifications are optional; without Resend credentials the
	// pipeline runs but skips the email.
	var notifier service.Notifier
	if n := email.NewNotifier(cfg.Email); n != nil {
		notifier = n
	} else {
		logger.Warn("Lead notifications disabled, no Resend credentials configured")
	}

	// Initialize services
	chatService := service.NewChatService(
		sessionRepo,
		leadRepo,
		completer,
		extractor,
		notifier,
		service.NewAnswerCache(answerCacheTTL),
		logger,
		cfg.Chat.MaxMessages,
		cfg.Chat.IPSalt,
	)

	waitlistService := service.NewWaitlistService(waitlistRepo, logger)

	// Setup router
	handler := api.NewHandler(chatService, waitlistService, logger)
	router := api.SetupRouter(handler, api.RouterConfig{
		AllowedOrigin: cfg.Chat.AllowedOrigin,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting lead chat server",
			zap.String("address", cfg.Address()),
			zap.String("allowed_origin", cfg.Chat.AllowedOrigin),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
