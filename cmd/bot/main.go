package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"

	"github.com/moshdev2213/letsbook/internal/config"
	"github.com/moshdev2213/letsbook/internal/infrastructure/pocketbase"
	"github.com/moshdev2213/letsbook/internal/repository/badgerdb"
	"github.com/moshdev2213/letsbook/internal/usecase"
	"github.com/moshdev2213/letsbook/transport/telegram"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	sessions, err := badgerdb.Open(cfg.SessionPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sessions.Close()

	gateway := pocketbase.NewClient(cfg.BackendURL, cfg.HTTPTimeout)
	authUC := usecase.NewAuthUsecase(gateway)
	bookingUC := usecase.NewBookingUsecase(gateway)

	tb := telegram.NewBot(nil, authUC, bookingUC, sessions)
	client, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(tb.OnMessage))
	if err != nil {
		log.Fatal(err)
	}
	tb.AddClient(client)
	tb.RegisterHandlers()

	slog.Info("bot started", "backend", cfg.BackendURL)
	tb.Start(ctx)
	slog.Info("bot stopped")
}
