package imagegen_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// MockImageProvider is a func-field fake for imagegen.ImageProvider.
type MockImageProvider struct {
	ReadyFunc         func() error
	GenerateImageFunc func(ctx context.Context, req imagegen.ProviderRequest) (*imagegen.ProviderResponse, error)

	calls []imagegen.ProviderRequest
}

func (m *MockImageProvider) Ready() error {
	if m.ReadyFunc != nil {
		return m.ReadyFunc()
	}
	return nil
}

func (m *MockImageProvider) GenerateImage(ctx context.Context, req imagegen.ProviderRequest) (*imagegen.ProviderResponse, error) {
	m.calls = append(m.calls, req)
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, req)
	}
	return &imagegen.ProviderResponse{Images: []imagegen.ProviderImage{{URL: "https://example/img.png"}}}, nil
}

func platformError(t *testing.T, err error) *platformerrors.PlatformError {
	t.Helper()
	require.Error(t, err)
	pErr := platformerrors.GetPlatformError(err)
	require.NotNil(t, pErr, "expected a platform error, got %v", err)
	return pErr
}

func TestGenerateAppliesDefaults(t *testing.T) {
	provider := &MockImageProvider{}
	svc := imagegen.NewService(provider, nil, zerolog.Nop())

	result, err := svc.Generate(context.Background(), imagegen.GenerationRequest{Prompt: "a cat"})
	require.NoError(t, err)
	assert.Equal(t, "https://example/img.png", result.URL)

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.Equal(t, "a cat", call.Prompt)
	assert.Equal(t, 1, call.N)
	assert.Equal(t, imagegen.SizeSquare, call.Size)
	assert.Equal(t, imagegen.StyleVivid, call.Style)
	assert.Equal(t, imagegen.QualityStandard, call.Quality)
}

func TestGenerateForwardsOptions(t *testing.T) {
	provider := &MockImageProvider{
		GenerateImageFunc: func(_ context.Context, _ imagegen.ProviderRequest) (*imagegen.ProviderResponse, error) {
			return &imagegen.ProviderResponse{Images: []imagegen.ProviderImage{{URL: "https://example/wide.png", RevisedPrompt: "a wide cat"}}}, nil
		},
	}
	svc := imagegen.NewService(provider, nil, zerolog.Nop())

	result, err := svc.Generate(context.Background(), imagegen.GenerationRequest{
		Prompt:  "a cat",
		Size:    imagegen.SizeLandscape,
		Style:   imagegen.StyleNatural,
		Quality: imagegen.QualityHD,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example/wide.png", result.URL)
	assert.Equal(t, "a wide cat", result.RevisedPrompt)

	call := provider.calls[0]
	assert.Equal(t, imagegen.SizeLandscape, call.Size)
	assert.Equal(t, imagegen.StyleNatural, call.Style)
	assert.Equal(t, imagegen.QualityHD, call.Quality)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     imagegen.GenerationRequest
		message string
	}{
		{"empty prompt", imagegen.GenerationRequest{}, imagegen.MessagePromptRequired},
		{"blank prompt", imagegen.GenerationRequest{Prompt: "   "}, imagegen.MessagePromptRequired},
		{"bad size", imagegen.GenerationRequest{Prompt: "x", Size: "512x512"}, imagegen.MessageInvalidSize},
		{"bad style", imagegen.GenerationRequest{Prompt: "x", Style: "bold"}, imagegen.MessageInvalidStyle},
		{"bad quality", imagegen.GenerationRequest{Prompt: "x", Quality: "ultra"}, imagegen.MessageInvalidQuality},
		{"size checked before style", imagegen.GenerationRequest{Prompt: "x", Size: "1x1", Style: "bold"}, imagegen.MessageInvalidSize},
		{"prompt checked first", imagegen.GenerationRequest{Size: "1x1"}, imagegen.MessagePromptRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &MockImageProvider{}
			svc := imagegen.NewService(provider, nil, zerolog.Nop())

			_, err := svc.Generate(context.Background(), tt.req)
			pErr := platformError(t, err)
			assert.Equal(t, platformerrors.ErrorTypeValidation, pErr.Type)
			assert.Equal(t, tt.message, pErr.Message)
			assert.Empty(t, provider.calls, "provider must not be called on invalid input")
		})
	}
}

func TestGenerateAcceptsEveryEnumeratedValue(t *testing.T) {
	svc := imagegen.NewService(&MockImageProvider{}, nil, zerolog.Nop())
	ctx := context.Background()

	for _, size := range imagegen.ValidSizes {
		_, err := svc.Generate(ctx, imagegen.GenerationRequest{Prompt: "x", Size: size})
		assert.NoError(t, err, "size %s", size)
	}
	for _, style := range imagegen.ValidStyles {
		_, err := svc.Generate(ctx, imagegen.GenerationRequest{Prompt: "x", Style: style})
		assert.NoError(t, err, "style %s", style)
	}
	for _, quality := range imagegen.ValidQualities {
		_, err := svc.Generate(ctx, imagegen.GenerationRequest{Prompt: "x", Quality: quality})
		assert.NoError(t, err, "quality %s", quality)
	}
}

func TestGenerateNotConfiguredShortCircuits(t *testing.T) {
	provider := &MockImageProvider{
		ReadyFunc: func() error {
			return &imagegen.ConfigError{Setting: "OPENAI_API_KEY", Reason: "not set"}
		},
	}
	svc := imagegen.NewService(provider, nil, zerolog.Nop())

	// An otherwise invalid request still reports the configuration problem first.
	_, err := svc.Generate(context.Background(), imagegen.GenerationRequest{})
	pErr := platformError(t, err)
	assert.Equal(t, platformerrors.ErrorTypeConfiguration, pErr.Type)
	assert.Equal(t, imagegen.MessageNotConfigured, pErr.Message)
	assert.Equal(t, "OPENAI_API_KEY not set", pErr.Details)
	assert.Empty(t, provider.calls)
	assert.Error(t, svc.Ready())
}

func TestGenerateUpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType platformerrors.ErrorType
		wantMsg  string
		details  string
	}{
		{
			name:     "credential",
			err:      &imagegen.UpstreamError{Kind: imagegen.FailureCredential, StatusCode: 401, Message: "Incorrect API key provided"},
			wantType: platformerrors.ErrorTypeUnauthorized,
			wantMsg:  imagegen.MessageInvalidCredential,
			details:  "Incorrect API key provided",
		},
		{
			name:     "policy",
			err:      &imagegen.UpstreamError{Kind: imagegen.FailurePolicy, StatusCode: 400, Message: "content policy violation"},
			wantType: platformerrors.ErrorTypePolicyViolation,
			wantMsg:  imagegen.MessagePolicyViolation,
			details:  "content policy violation",
		},
		{
			name:     "unknown upstream",
			err:      &imagegen.UpstreamError{Kind: imagegen.FailureUnknown, StatusCode: 503, Message: "overloaded"},
			wantType: platformerrors.ErrorTypeExternal,
			wantMsg:  imagegen.MessageGenerationFailed,
			details:  "overloaded",
		},
		{
			name:     "unclassified error",
			err:      errors.New("dial tcp: connection refused"),
			wantType: platformerrors.ErrorTypeExternal,
			wantMsg:  imagegen.MessageGenerationFailed,
			details:  "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &MockImageProvider{
				GenerateImageFunc: func(context.Context, imagegen.ProviderRequest) (*imagegen.ProviderResponse, error) {
					return nil, tt.err
				},
			}
			svc := imagegen.NewService(provider, nil, zerolog.Nop())

			_, err := svc.Generate(context.Background(), imagegen.GenerationRequest{Prompt: "a cat"})
			pErr := platformError(t, err)
			assert.Equal(t, tt.wantType, pErr.Type)
			assert.Equal(t, tt.wantMsg, pErr.Message)
			assert.Equal(t, tt.details, pErr.Details)
			assert.Len(t, provider.calls, 1, "no retries")
		})
	}
}

func TestGenerateMissingURLIsContractViolation(t *testing.T) {
	for name, resp := range map[string]*imagegen.ProviderResponse{
		"nil response": nil,
		"no images":    {},
		"empty url":    {Images: []imagegen.ProviderImage{{URL: ""}}},
	} {
		t.Run(name, func(t *testing.T) {
			provider := &MockImageProvider{
				GenerateImageFunc: func(context.Context, imagegen.ProviderRequest) (*imagegen.ProviderResponse, error) {
					return resp, nil
				},
			}
			svc := imagegen.NewService(provider, nil, zerolog.Nop())

			_, err := svc.Generate(context.Background(), imagegen.GenerationRequest{Prompt: "a cat"})
			pErr := platformError(t, err)
			assert.Equal(t, platformerrors.ErrorTypeInternal, pErr.Type)
			assert.Equal(t, imagegen.MessageGenerationFailed, pErr.Message)
			assert.Equal(t, imagegen.DetailsMissingImageURL, pErr.Details)

			var upstream *imagegen.UpstreamError
			require.ErrorAs(t, err, &upstream)
			assert.Equal(t, imagegen.FailureContract, upstream.Kind)
		})
	}
}

func TestSupportedOptions(t *testing.T) {
	opts := imagegen.NewService(&MockImageProvider{}, nil, zerolog.Nop()).Options()
	assert.Equal(t, []imagegen.Size{"1024x1024", "1792x1024", "1024x1792"}, opts.Sizes)
	assert.Equal(t, []imagegen.Style{"natural", "vivid"}, opts.Styles)
	assert.Equal(t, []imagegen.Quality{"standard", "hd"}, opts.Qualities)
	assert.Equal(t, imagegen.SizeSquare, opts.DefaultSize)
	assert.Equal(t, "Invalid size. Must be one of: 1024x1024, 1792x1024, 1024x1792", imagegen.MessageInvalidSize)
}

type upperSanitizer struct{ seen []string }

func (u *upperSanitizer) SanitizePrompt(prompt string) string {
	u.seen = append(u.seen, prompt)
	return strings.ToUpper(prompt)
}

func TestGenerateLogsSanitizedPrompt(t *testing.T) {
	var buf bytes.Buffer
	sanitizer := &upperSanitizer{}
	provider := &MockImageProvider{}
	svc := imagegen.NewService(provider, sanitizer, zerolog.New(&buf))

	_, err := svc.Generate(context.Background(), imagegen.GenerationRequest{Prompt: "mail me at a@b.co"})
	require.NoError(t, err)

	assert.Equal(t, []string{"mail me at a@b.co"}, sanitizer.seen)
	assert.Contains(t, buf.String(), "MAIL ME AT A@B.CO")
	assert.Equal(t, "mail me at a@b.co", provider.calls[0].Prompt, "provider receives the unsanitized prompt")
}

func TestGenerateWithUnconfiguredProvider(t *testing.T) {
	cfgErr := &imagegen.ConfigError{Setting: "OPENAI_API_KEY", Reason: "not set"}
	svc := imagegen.NewService(imagegen.NewUnconfiguredProvider(cfgErr), nil, zerolog.Nop())

	_, err := svc.Generate(context.Background(), imagegen.GenerationRequest{Prompt: "a cat"})
	pErr := platformError(t, err)
	assert.Equal(t, platformerrors.ErrorTypeConfiguration, pErr.Type)
	assert.Equal(t, imagegen.MessageNotConfigured, pErr.Message)
	assert.Equal(t, "OPENAI_API_KEY not set", pErr.Details)
	assert.ErrorIs(t, svc.Ready(), cfgErr)
}
