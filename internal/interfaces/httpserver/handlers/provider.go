package handlers

import (
	"github.com/google/wire"

	"jan-server/services/imagegen-api/internal/config"
	"jan-server/services/imagegen-api/internal/domain/imagegen"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Image *ImageHandler
}

// NewProvider creates a new handler provider.
func NewProvider(cfg *config.Config, imageService imagegen.Service) *Provider {
	return &Provider{
		Image: NewImageHandler(cfg, imageService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
