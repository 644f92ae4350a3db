package imagegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// Size is the pixel dimension of the generated image.
type Size string

const (
	SizeSquare    Size = "1024x1024"
	SizeLandscape Size = "1792x1024"
	SizePortrait  Size = "1024x1792"
)

// Style controls how dramatic the rendering is.
type Style string

const (
	StyleNatural Style = "natural"
	StyleVivid   Style = "vivid"
)

// Quality controls the level of detail.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

const (
	DefaultSize    = SizeSquare
	DefaultStyle   = StyleVivid
	DefaultQuality = QualityStandard

	// ImagesPerRequest is fixed; the gateway never asks the provider for more than one image.
	ImagesPerRequest = 1
)

var (
	ValidSizes     = []Size{SizeSquare, SizeLandscape, SizePortrait}
	ValidStyles    = []Style{StyleNatural, StyleVivid}
	ValidQualities = []Quality{QualityStandard, QualityHD}
)

// Validation messages returned to callers verbatim.
var (
	MessagePromptRequired = "Valid prompt is required"
	MessageInvalidSize    = "Invalid size. Must be one of: " + joinValues(ValidSizes)
	MessageInvalidStyle   = "Invalid style. Must be one of: " + joinValues(ValidStyles)
	MessageInvalidQuality = "Invalid quality. Must be one of: " + joinValues(ValidQualities)
)

// GenerationRequest is a single text-to-image request. Empty option fields mean "use the default".
type GenerationRequest struct {
	Prompt  string
	Size    Size
	Style   Style
	Quality Quality
}

// GenerationResult holds the outcome of a successful generation.
type GenerationResult struct {
	URL           string
	RevisedPrompt string
	Size          Size
	Style         Style
	Quality       Quality
}

// Options describes the accepted option values and their defaults.
type Options struct {
	Sizes          []Size
	Styles         []Style
	Qualities      []Quality
	DefaultSize    Size
	DefaultStyle   Style
	DefaultQuality Quality
}

// SupportedOptions returns the enumerated option sets.
func SupportedOptions() Options {
	return Options{
		Sizes:          ValidSizes,
		Styles:         ValidStyles,
		Qualities:      ValidQualities,
		DefaultSize:    DefaultSize,
		DefaultStyle:   DefaultStyle,
		DefaultQuality: DefaultQuality,
	}
}

// Validate checks the request fail-fast in the order prompt, size, style, quality.
func (r GenerationRequest) Validate(ctx context.Context) error {
	if strings.TrimSpace(r.Prompt) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MessagePromptRequired, nil, "imagegen-validation-prompt")
	}
	if r.Size != "" && !lo.Contains(ValidSizes, r.Size) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MessageInvalidSize, nil, "imagegen-validation-size",
			map[string]any{"size": string(r.Size)})
	}
	if r.Style != "" && !lo.Contains(ValidStyles, r.Style) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MessageInvalidStyle, nil, "imagegen-validation-style",
			map[string]any{"style": string(r.Style)})
	}
	if r.Quality != "" && !lo.Contains(ValidQualities, r.Quality) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MessageInvalidQuality, nil, "imagegen-validation-quality",
			map[string]any{"quality": string(r.Quality)})
	}
	return nil
}

// WithDefaults fills absent options with their default values.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	r.Size = lo.Ternary(r.Size == "", DefaultSize, r.Size)
	r.Style = lo.Ternary(r.Style == "", DefaultStyle, r.Style)
	r.Quality = lo.Ternary(r.Quality == "", DefaultQuality, r.Quality)
	return r
}

func joinValues[T ~string](values []T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string { return string(v) }), ", ")
}

// truncate shortens s for log output.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return fmt.Sprintf("%s...", string(runes[:max]))
}
