package imageprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"jan-server/services/imagegen-api/internal/config"
	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/infrastructure/metrics"
)

const (
	providerName = "openai"

	codeInvalidAPIKey   = "invalid_api_key"
	codeContentPolicy   = "content_policy_violation"
	markerAPIKey        = "API key"
	markerContentPolicy = "content policy violation"

	missingKeySetting = "OPENAI_API_KEY"
	missingKeyReason  = "not set. Export it or point OPENAI_API_KEY_PARAM at an SSM parameter."
)

// OpenAIProvider implements imagegen.ImageProvider on top of the OpenAI Images API.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// Options configures an OpenAIProvider.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// OptionsFromConfig builds provider options from the service configuration and a resolved API key.
func OptionsFromConfig(cfg *config.Config, apiKey string) Options {
	return Options{
		APIKey:  apiKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIImageModel,
		Timeout: cfg.OpenAIRequestTimeout,
	}
}

// NewOpenAIProvider builds the provider. An empty API key yields a *imagegen.ConfigError.
func NewOpenAIProvider(opts Options, log zerolog.Logger) (*OpenAIProvider, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, &imagegen.ConfigError{Setting: missingKeySetting, Reason: missingKeyReason}
	}

	clientCfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		clientCfg.HTTPClient = opts.HTTPClient
	}

	model := opts.Model
	if model == "" {
		model = openai.CreateImageModelDallE3
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: opts.Timeout,
		log:     log.With().Str("component", "openai-image-provider").Str("model", model).Logger(),
	}, nil
}

// NewImageProvider returns the OpenAI provider, or an imagegen.UnconfiguredProvider
// when the credential is missing so the service still starts and answers 500.
func NewImageProvider(opts Options, log zerolog.Logger) (imagegen.ImageProvider, error) {
	provider, err := NewOpenAIProvider(opts, log)
	var cfgErr *imagegen.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		log.Warn().Str("setting", cfgErr.Setting).Msg("image provider not configured; generation requests will fail")
		return imagegen.NewUnconfiguredProvider(cfgErr), nil
	case err != nil:
		return nil, err
	}
	return provider, nil
}

// Ready implements imagegen.ImageProvider.
func (p *OpenAIProvider) Ready() error {
	return nil
}

// GenerateImage implements imagegen.ImageProvider.
func (p *OpenAIProvider) GenerateImage(ctx context.Context, req imagegen.ProviderRequest) (*imagegen.ProviderResponse, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	n := req.N
	if n <= 0 {
		n = imagegen.ImagesPerRequest
	}

	start := time.Now()
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          p.model,
		N:              n,
		Size:           string(req.Size),
		Style:          string(req.Style),
		Quality:        string(req.Quality),
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	elapsed := time.Since(start)
	if err != nil {
		upstream := classify(err)
		metrics.RecordProviderCall(providerName, p.model, string(upstream.Kind), elapsed.Seconds())
		p.log.Warn().
			Str("kind", string(upstream.Kind)).
			Int("status", upstream.StatusCode).
			Dur("duration", elapsed).
			Err(err).
			Msg("image provider call failed")
		return nil, upstream
	}
	metrics.RecordProviderCall(providerName, p.model, "", elapsed.Seconds())

	out := &imagegen.ProviderResponse{
		Created: resp.Created,
		Images:  make([]imagegen.ProviderImage, 0, len(resp.Data)),
	}
	for _, item := range resp.Data {
		out.Images = append(out.Images, imagegen.ProviderImage{
			URL:           item.URL,
			RevisedPrompt: item.RevisedPrompt,
		})
	}
	return out, nil
}

// classify turns a go-openai error into an UpstreamError. Structured fields win;
// message substrings are the fallback for compatible gateways that omit error codes.
func classify(err error) *imagegen.UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := fmt.Sprint(apiErr.Code)
		kind := kindFromMessage(apiErr.Message)
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized || code == codeInvalidAPIKey:
			kind = imagegen.FailureCredential
		case code == codeContentPolicy:
			kind = imagegen.FailurePolicy
		}
		return &imagegen.UpstreamError{
			Kind:       kind,
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		kind := kindFromMessage(err.Error())
		if reqErr.HTTPStatusCode == http.StatusUnauthorized {
			kind = imagegen.FailureCredential
		}
		return &imagegen.UpstreamError{
			Kind:       kind,
			StatusCode: reqErr.HTTPStatusCode,
			Message:    err.Error(),
			Err:        err,
		}
	}

	return &imagegen.UpstreamError{
		Kind:    kindFromMessage(err.Error()),
		Message: err.Error(),
		Err:     err,
	}
}

func kindFromMessage(message string) imagegen.FailureKind {
	switch {
	case strings.Contains(message, markerAPIKey):
		return imagegen.FailureCredential
	case strings.Contains(strings.ToLower(message), markerContentPolicy):
		return imagegen.FailurePolicy
	default:
		return imagegen.FailureUnknown
	}
}
