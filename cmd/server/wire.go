//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"jan-server/services/imagegen-api/internal/config"
	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/infrastructure/imageprovider"
	"jan-server/services/imagegen-api/internal/infrastructure/logger"
	"jan-server/services/imagegen-api/internal/infrastructure/telemetry"
	"jan-server/services/imagegen-api/internal/interfaces/httpserver"
)

var imagegenSet = wire.NewSet(
	resolveAPIKey,
	imageprovider.OptionsFromConfig,
	imageprovider.NewImageProvider,
	telemetry.NewSanitizerFromConfig,
	wire.Bind(new(imagegen.PromptSanitizer), new(*telemetry.Sanitizer)),
	imagegen.NewService,
)

// BuildApplication assembles the image generation service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		imagegenSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
