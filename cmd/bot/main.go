package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/app"
	"github.com/artbeauty/intake-bot/internal/assistant"
	"github.com/artbeauty/intake-bot/internal/config"
	"github.com/artbeauty/intake-bot/internal/controller"
	"github.com/artbeauty/intake-bot/internal/notify"
	"github.com/artbeauty/intake-bot/internal/repository"
	"github.com/artbeauty/intake-bot/internal/server"
	"github.com/artbeauty/intake-bot/internal/service"
	"github.com/artbeauty/intake-bot/internal/state"
)

// botRestartDelay — пауза перед перезапуском упавшего polling-цикла
const botRestartDelay = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting intake bot",
		zap.String("environment", cfg.Environment),
		zap.String("http_addr", cfg.HTTPAddr))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create telegram bot", zap.Error(err))
	}

	ledger, err := repository.NewSheetsRepository(ctx, cfg.CredentialsPath, cfg.SpreadsheetID, cfg.SheetName, logger)
	if err != nil {
		logger.Fatal("Failed to create sheets repository", zap.Error(err))
	}

	responder := assistant.NewClient(cfg.OpenAIAPIKey, cfg.AssistantID,
		cfg.AssistantPollInterval, cfg.AssistantTimeout, logger)
	notifier := notify.NewTelegramNotifier(b, cfg.AdminChatID, logger)

	sessions := state.NewManager(cfg.HistoryLimit)
	intake := service.NewIntakeService(sessions, ledger, notifier, logger)
	dialog := service.NewDialogService(sessions, responder, intake, logger)
	guided := service.NewGuidedService(sessions, dialog, intake, logger)

	botController := controller.NewBotController(b, guided, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register bot handlers", zap.Error(err))
	}

	webServer := server.New(dialog, cfg.Environment, logger)
	go func() {
		if err := webServer.Run(cfg.HTTPAddr); err != nil {
			logger.Fatal("Web chat server stopped", zap.Error(err))
		}
	}()

	// Polling-цикл бота живёт под супервизором до SIGINT/SIGTERM
	err = app.Supervise(ctx, "telegram-bot", botRestartDelay, logger, func(ctx context.Context) error {
		botController.Start(ctx)
		return ctx.Err()
	})
	if err != nil && ctx.Err() == nil {
		logger.Fatal("Bot supervisor exited", zap.Error(err))
	}

	logger.Info("Shutting down")
}
