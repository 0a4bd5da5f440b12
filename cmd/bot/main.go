package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"siburger-bot/internal/admin"
	"siburger-bot/internal/bot"
	"siburger-bot/internal/config"
	"siburger-bot/internal/logger"
	"siburger-bot/internal/order"
	"siburger-bot/internal/store"
	"siburger-bot/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Without storage configuration the bot still starts; order and user
	// services stay nil and the handlers degrade per request.
	var orderSvc order.Service
	var userSvc user.Service
	if cfg.PersistenceEnabled() {
		client, err := store.Connect(ctx, cfg)
		if err != nil {
			log.Fatal("failed to connect to storage", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(shutdownCtx); err != nil {
				log.Warn("failed to close storage client", zap.Error(err))
			}
		}()

		orderSvc = order.NewService(order.NewRepository(client))
		userSvc = user.NewService(user.NewRepository(client))
	}

	b, err := bot.New(cfg.BotToken, orderSvc, userSvc)
	if err != nil {
		log.Fatal("failed to start bot", zap.Error(err))
	}
	log.Info("🤖 SiBurger Bot is running", zap.String("username", b.Username()))

	if cfg.AdminEnabled() && orderSvc != nil {
		adminSrv := admin.NewServer(cfg, orderSvc)
		go func() {
			log.Info("operator API listening", zap.String("port", cfg.AdminPort))
			if err := adminSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				log.Error("operator API stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = adminSrv.Shutdown(shutdownCtx)
		}()
	}

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", zap.Error(err))
	}

	log.Info("shutting down")
}
