package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pollboard/api/internal/adapters/handler/http"
	"github.com/pollboard/api/internal/adapters/repository/postgres"
	"github.com/pollboard/api/internal/config"
	"github.com/pollboard/api/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	pollRepo := postgres.NewPollRepository(db)
	choiceRepo := postgres.NewChoiceRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	modRepo := postgres.NewModeratorRepository(db)
	banRepo := postgres.NewBanRepository(db)

	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	userService := services.NewUserService(userRepo)
	pollService := services.NewPollService(pollRepo)
	choiceService := services.NewChoiceService(choiceRepo, pollRepo)
	voteService := services.NewVoteService(voteRepo)
	moderationService := services.NewModerationService(modRepo, banRepo, userRepo)

	handler := http.NewRouter(http.RouterDeps{
		Auth:          http.NewAuthenticator(authService, userRepo),
		AuthHandler:   http.NewAuthHandler(authService, cfg.LoginRedirectURL, cfg.CookieDomain, int(cfg.TokenTTL.Seconds())),
		Users:         http.NewUserHandler(userService, authService),
		Polls:         http.NewPollHandler(pollService),
		Choices:       http.NewChoiceHandler(choiceService),
		Votes:         http.NewVoteHandler(voteService),
		Moderators:    http.NewModeratorHandler(moderationService),
		Bans:          http.NewBanHandler(moderationService),
		AllowedOrigin: cfg.CORSOrigins,
	})

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
