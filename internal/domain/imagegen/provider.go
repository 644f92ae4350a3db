package imagegen

import "context"

// ProviderRequest is the fully defaulted request handed to an image provider.
type ProviderRequest struct {
	Prompt  string
	N       int
	Size    Size
	Style   Style
	Quality Quality
}

// ProviderImage is one image returned by the provider.
type ProviderImage struct {
	URL           string
	RevisedPrompt string
}

// ProviderResponse is the normalized provider output.
type ProviderResponse struct {
	Created int64
	Images  []ProviderImage
}

// ImageProvider is the port to the external text-to-image API.
type ImageProvider interface {
	// Ready returns a *ConfigError when the provider cannot be called at all.
	Ready() error
	GenerateImage(ctx context.Context, req ProviderRequest) (*ProviderResponse, error)
}

// UnconfiguredProvider stands in for a provider whose construction failed with a
// *ConfigError. Every call reports that error so the gateway answers without
// reaching upstream.
type UnconfiguredProvider struct {
	Err error
}

// NewUnconfiguredProvider wraps the construction error.
func NewUnconfiguredProvider(err error) *UnconfiguredProvider {
	return &UnconfiguredProvider{Err: err}
}

func (p *UnconfiguredProvider) Ready() error {
	return p.Err
}

func (p *UnconfiguredProvider) GenerateImage(context.Context, ProviderRequest) (*ProviderResponse, error) {
	return nil, p.Err
}
