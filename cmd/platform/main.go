package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/Jrokz2315/SecureID/internal/api"
	"github.com/Jrokz2315/SecureID/internal/buildinfo"
	"github.com/Jrokz2315/SecureID/internal/cache"
	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/services"
	"github.com/Jrokz2315/SecureID/internal/gateways"
	"github.com/Jrokz2315/SecureID/internal/health"
	"github.com/Jrokz2315/SecureID/internal/log"
	"github.com/Jrokz2315/SecureID/internal/repositories"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Error(context.Background(), "cannot load config", "err", err)
		os.Exit(1)
	}

	// Context with log
	ctx, cancel := context.WithCancel(log.NewContext(context.Background(), cfg.Log.Level, cfg.Log.Mode, os.Stdout))
	defer cancel()

	sessionStore, err := cache.NewCacheClient(ctx, cfg.Cache)
	if err != nil {
		log.Error(ctx, "cannot open session store", "err", err)
		os.Exit(1)
	}
	repo := repositories.NewSessionCached(sessionStore)

	verification := services.NewPhoneVerification(repo, gateways.NewTwilioDispatcher(cfg.Twilio), cfg.ServerUrl, cfg.CodeTTL)
	presentation := services.NewPresentation(repo, gateways.NewVerifiedIDGateway(ctx, cfg.VerifiedID, cfg.Graph), domain.DefaultClaimRules(), cfg.ServerUrl)
	account := services.NewAccount(gateways.NewGraphGateway(ctx, cfg.Graph))

	checks := health.New(map[string]health.Ping{
		"store": func(ctx context.Context) error {
			return sessionStore.Set(ctx, "secureid:health:probe", "ok", time.Minute)
		},
	})

	mux := chi.NewRouter()
	api.NewServer(cfg, verification, presentation, account, checks).Routes(ctx, mux)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info(ctx, "server started", "port", cfg.ServerPort, "url", cfg.ServerUrl, "revision", buildinfo.Revision())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "starting http server", "err", err)
		}
	}()

	<-quit
	log.Info(ctx, "shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutting down http server", "err", err)
	}
}
