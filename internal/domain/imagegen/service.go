package imagegen

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// Caller-facing messages for failures that are not validation errors.
const (
	MessageNotConfigured     = "Image generation API key is not configured"
	MessageInvalidCredential = "Image provider API key is invalid or missing"
	MessagePolicyViolation   = "The prompt was rejected by the provider's content policy"
	MessageGenerationFailed  = "Failed to generate image"

	DetailsMissingImageURL = "invalid response from image provider: missing image URL"
)

// Service is the generation gateway: it validates requests, calls the provider and normalizes the outcome.
type Service interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
	Options() Options
	Ready() error
}

// PromptSanitizer scrubs prompts before they are logged.
type PromptSanitizer interface {
	SanitizePrompt(prompt string) string
}

type service struct {
	provider  ImageProvider
	sanitizer PromptSanitizer
	log       zerolog.Logger
}

// NewService wires the generation gateway with its image provider.
// A nil sanitizer logs prompts as-is.
func NewService(provider ImageProvider, sanitizer PromptSanitizer, log zerolog.Logger) Service {
	return &service{
		provider:  provider,
		sanitizer: sanitizer,
		log:       log.With().Str("component", "imagegen-service").Logger(),
	}
}

func (s *service) Options() Options {
	return SupportedOptions()
}

func (s *service) Ready() error {
	return s.provider.Ready()
}

func (s *service) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if err := s.provider.Ready(); err != nil {
		return nil, s.configurationError(ctx, err)
	}

	if err := req.Validate(ctx); err != nil {
		return nil, err
	}
	req = req.WithDefaults()

	log := s.log.With().
		Str("request_id", platformerrors.RequestIDFromContext(ctx)).
		Str("size", string(req.Size)).
		Str("style", string(req.Style)).
		Str("quality", string(req.Quality)).
		Logger()
	log.Info().Str("prompt", s.loggablePrompt(req.Prompt)).Msg("generating image")

	start := time.Now()
	resp, err := s.provider.GenerateImage(ctx, ProviderRequest{
		Prompt:  req.Prompt,
		N:       ImagesPerRequest,
		Size:    req.Size,
		Style:   req.Style,
		Quality: req.Quality,
	})
	if err != nil {
		return nil, s.upstreamError(ctx, err)
	}

	var images []ProviderImage
	if resp != nil {
		images = resp.Images
	}
	image, found := lo.Find(images, func(img ProviderImage) bool { return img.URL != "" })
	if !found {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			MessageGenerationFailed, &UpstreamError{Kind: FailureContract, Message: DetailsMissingImageURL}, "imagegen-upstream-contract").
			WithDetails(DetailsMissingImageURL)
	}

	log.Info().Dur("duration", time.Since(start)).Msg("image generated")

	return &GenerationResult{
		URL:           image.URL,
		RevisedPrompt: image.RevisedPrompt,
		Size:          req.Size,
		Style:         req.Style,
		Quality:       req.Quality,
	}, nil
}

func (s *service) loggablePrompt(prompt string) string {
	if s.sanitizer != nil {
		prompt = s.sanitizer.SanitizePrompt(prompt)
	}
	return truncate(prompt, 100)
}

func (s *service) configurationError(ctx context.Context, err error) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConfiguration,
		MessageNotConfigured, err, "imagegen-not-configured").WithDetails(err.Error())
}

// upstreamError maps a provider failure onto the caller-facing error taxonomy.
func (s *service) upstreamError(ctx context.Context, err error) error {
	kind := FailureUnknown
	message := err.Error()
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		kind = upstream.Kind
		message = upstream.Message
	}

	switch kind {
	case FailureCredential:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			MessageInvalidCredential, err, "imagegen-upstream-credential").WithDetails(message)
	case FailurePolicy:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePolicyViolation,
			MessagePolicyViolation, err, "imagegen-upstream-policy").WithDetails(message)
	case FailureContract:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			MessageGenerationFailed, err, "imagegen-upstream-contract").WithDetails(message)
	default:
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			MessageGenerationFailed, err, "imagegen-upstream-failure").WithDetails(message)
	}
}
