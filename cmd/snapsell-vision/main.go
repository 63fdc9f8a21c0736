package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/snapsell/vision-api/internal/analytics"
	"github.com/snapsell/vision-api/internal/config"
	"github.com/snapsell/vision-api/internal/server"
	"github.com/snapsell/vision-api/internal/vision"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg := config.Load()

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry, err := buildRegistry(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize vision providers")
	}
	if len(registry.Providers()) == 0 {
		log.Fatal().Msg("no vision provider configured: set GEMINI_API_KEY, OPENAI_API_KEY or the AZURE_OPENAI_* variables")
	}
	log.Info().
		Strs("providers", registry.Providers()).
		Str("default", cfg.DefaultProvider).
		Msg("vision providers initialized")

	analyticsClient := analytics.New(cfg.AnalyticsEndpoint, cfg.AnalyticsKey)
	if analyticsClient == nil {
		log.Info().Msg("analytics disabled")
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(registry, analyticsClient, cfg.DefaultProvider).Handler(cfg.AllowedOrigins),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}

// buildRegistry wires every provider that has credentials configured.
func buildRegistry(ctx context.Context, cfg *config.Config) (*vision.Registry, error) {
	registry := vision.NewRegistry()
	if cfg.GeminiAPIKey != "" {
		gemini, err := vision.NewGeminiQuerier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		registry.Register("gemini", gemini)
	}
	if cfg.OpenAIAPIKey != "" {
		registry.Register("openai", vision.NewOpenAIQuerier(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}
	if cfg.AzureAPIKey != "" && cfg.AzureEndpoint != "" {
		registry.Register("azure", vision.NewAzureQuerier(cfg.AzureEndpoint, cfg.AzureAPIVersion, cfg.AzureAPIKey, cfg.AzureDeployment))
	}
	return registry, nil
}
