package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miscapi/miscapi-go/internal/config"
	"github.com/miscapi/miscapi-go/internal/handler"
	"github.com/miscapi/miscapi-go/internal/middleware"
	"github.com/miscapi/miscapi-go/internal/passphrase"
	"github.com/miscapi/miscapi-go/internal/random"
	"github.com/miscapi/miscapi-go/internal/service"
	"github.com/miscapi/miscapi-go/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	store, err := loadWordlist(cfg.WordlistPath)
	if err != nil {
		slog.Error("failed to load word list", "path", cfg.WordlistPath, "error", err)
		os.Exit(1)
	}

	src := random.NewSource()
	composer := passphrase.NewComposer(store, src)
	randomService := service.NewRandomService(src, composer)

	randomHandler := handler.NewRandomHandler(randomService)
	metaHandler := handler.NewMetaHandler()
	fetchHandler := handler.NewFetchHandler(&http.Client{Timeout: cfg.FetchTimeout})

	r := chi.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)

	r.Get("/", metaHandler.HandleRoot)
	r.Get("/docs", metaHandler.HandleDocs)

	r.Get("/flip-coin", randomHandler.HandleFlipCoin)
	r.Get("/roll-dice", randomHandler.HandleRollDice)
	r.Get("/random-number", randomHandler.HandleRandomNumber)
	r.Get("/random-string", randomHandler.HandleRandomString)
	r.Get("/random-uuid", randomHandler.HandleUUID)
	r.Get("/random-passphrase", randomHandler.HandlePassphrase)

	r.Get("/ip", metaHandler.HandleIP)
	r.Get("/headers", metaHandler.HandleHeaders)
	r.Get("/epoch-time", metaHandler.HandleEpochTime)

	r.Get("/teapot", fetchHandler.HandleTeapot)
	r.Get("/random-dog", fetchHandler.HandleRandomDog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "words", store.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// loadWordlist uses the embedded list unless WORDLIST_PATH points elsewhere.
func loadWordlist(path string) (*wordlist.Store, error) {
	if path != "" {
		return wordlist.Load(path)
	}
	return wordlist.Embedded()
}
