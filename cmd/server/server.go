package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jan-server/services/imagegen-api/internal/config"
	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/infrastructure/credentials"
	"jan-server/services/imagegen-api/internal/infrastructure/imageprovider"
	"jan-server/services/imagegen-api/internal/infrastructure/logger"
	"jan-server/services/imagegen-api/internal/infrastructure/observability"
	"jan-server/services/imagegen-api/internal/infrastructure/telemetry"
	"jan-server/services/imagegen-api/internal/interfaces/httpserver"
)

// @title Image Generation API
// @version 1.0
// @description Text-to-image generation gateway in front of the OpenAI Images API
// @BasePath /
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	apiKey, err := resolveAPIKey(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve image provider API key")
	}

	provider, err := imageprovider.NewImageProvider(imageprovider.OptionsFromConfig(cfg, apiKey), log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize image provider")
	}
	imageService := imagegen.NewService(provider, telemetry.NewSanitizerFromConfig(cfg), log)

	httpServer := httpserver.New(cfg, log, imageService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// resolveAPIKey only touches AWS when OPENAI_API_KEY is absent and a parameter name is configured.
func resolveAPIKey(ctx context.Context, cfg *config.Config, log zerolog.Logger) (string, error) {
	var fetcher credentials.Fetcher
	if cfg.OpenAIAPIKey == "" && strings.TrimSpace(cfg.OpenAIAPIKeyParam) != "" {
		ssmFetcher, err := credentials.NewDefaultParameterStoreFetcher(ctx)
		if err != nil {
			return "", err
		}
		fetcher = ssmFetcher
	}
	return credentials.ResolveAPIKey(ctx, cfg, fetcher, log)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
