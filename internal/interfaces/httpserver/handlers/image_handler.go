package handlers

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"

	"jan-server/services/imagegen-api/internal/config"
	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/domain/stylepreset"
	"jan-server/services/imagegen-api/internal/infrastructure/metrics"
	"jan-server/services/imagegen-api/internal/infrastructure/observability"
	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// ImageHandler adapts the generation gateway for HTTP routes and records spans and metrics.
type ImageHandler struct {
	service     imagegen.Service
	serviceName string
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(cfg *config.Config, service imagegen.Service) *ImageHandler {
	return &ImageHandler{
		service:     service,
		serviceName: cfg.ServiceName,
	}
}

// GenerateImage runs one generation request through the gateway.
func (h *ImageHandler) GenerateImage(ctx context.Context, req imagegen.GenerationRequest) (*imagegen.GenerationResult, error) {
	ctx, span := observability.StartSpan(ctx, h.serviceName, "imagegen.GenerateImage")
	defer span.End()

	size := metricLabel(req.Size, imagegen.ValidSizes, imagegen.DefaultSize)
	quality := metricLabel(req.Quality, imagegen.ValidQualities, imagegen.DefaultQuality)
	observability.AddSpanAttributes(ctx,
		attribute.String("imagegen.size", size),
		attribute.String("imagegen.style", metricLabel(req.Style, imagegen.ValidStyles, imagegen.DefaultStyle)),
		attribute.String("imagegen.quality", quality),
		attribute.Int("imagegen.prompt_length", len(req.Prompt)),
	)

	result, err := h.service.Generate(ctx, req)
	metrics.RecordGeneration(outcome(err), size, quality)
	if err != nil {
		observability.RecordError(ctx, err)
		return nil, err
	}
	return result, nil
}

// StylePresets returns the preset catalogue.
func (h *ImageHandler) StylePresets() []stylepreset.Preset {
	return stylepreset.All()
}

// Options returns the accepted option values.
func (h *ImageHandler) Options() imagegen.Options {
	return h.service.Options()
}

// Ready reports whether the gateway can reach its provider.
func (h *ImageHandler) Ready() error {
	return h.service.Ready()
}

// metricLabel keeps label cardinality bounded: unknown values collapse to "invalid".
func metricLabel[T ~string](value T, valid []T, fallback T) string {
	if value == "" {
		return string(fallback)
	}
	if !lo.Contains(valid, value) {
		return "invalid"
	}
	return string(value)
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	pErr := platformerrors.GetPlatformError(err)
	if pErr == nil {
		return "error"
	}
	switch pErr.Type {
	case platformerrors.ErrorTypeValidation:
		return "validation"
	case platformerrors.ErrorTypeConfiguration:
		return "not_configured"
	case platformerrors.ErrorTypeUnauthorized:
		return "credential"
	case platformerrors.ErrorTypePolicyViolation:
		return "policy"
	default:
		return "upstream_error"
	}
}
