package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	subscriber "github.com/lucasdotdev/waveline/internal/adapters/primary/redis"
	"github.com/lucasdotdev/waveline/internal/adapters/primary/rest"
	"github.com/lucasdotdev/waveline/internal/adapters/primary/ws"
	"github.com/lucasdotdev/waveline/internal/adapters/secondary/broadcaster"
	"github.com/lucasdotdev/waveline/internal/adapters/secondary/history"
	"github.com/lucasdotdev/waveline/internal/adapters/secondary/store"
	"github.com/lucasdotdev/waveline/internal/domain"
	"github.com/lucasdotdev/waveline/internal/infrastructure/config"
	"github.com/lucasdotdev/waveline/internal/infrastructure/log"
	"github.com/lucasdotdev/waveline/internal/infrastructure/redis"
	"github.com/lucasdotdev/waveline/internal/infrastructure/runner"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Config(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		slog.DebugContext(ctx, "received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "error running server", "error", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()

	messageStore, err := history.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("history.New: %w", err)
	}
	defer messageStore.Close()

	redisClient := redis.NewClient(cfg.RedisAddr)

	memoryRoomStore := store.NewMemoryRoomStore()
	redisBroadcaster := broadcaster.NewBroadcaster(redisClient)
	relayService := domain.NewRelayService(memoryRoomStore, redisBroadcaster, messageStore)

	router := ws.NewRouter(relayService)
	wsServer := ws.NewServer(router, cfg.AllowedOrigins)
	restHandler := rest.NewHandler(relayService)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsServer.ServeWs)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	restHandler.Register(mux)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	r := runner.New(ctx)

	r.Go(func(ctx context.Context) error {
		slog.DebugContext(ctx, "starting server", "address", cfg.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}

		return nil
	})

	r.Go(func(ctx context.Context) error {
		sub := subscriber.NewSubscriber(redisClient, relayService)
		return sub.Subscribe(ctx, domain.ChatChannel)
	})

	r.Go(func(ctx context.Context) error {
		<-ctx.Done()
		slog.DebugContext(ctx, "initiating server shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := relayService.Close(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "error closing relay service", "error", err)
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}

		return nil
	})

	if err := r.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "error running server", "error", err)
		return fmt.Errorf("runner.Wait: %w", err)
	}

	return nil
}
