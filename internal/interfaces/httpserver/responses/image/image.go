package image

import (
	"jan-server/services/imagegen-api/internal/domain/imagegen"
	"jan-server/services/imagegen-api/internal/domain/stylepreset"
)

// ImageGenerationResponse is returned on a successful generation.
type ImageGenerationResponse struct {
	URL           string `json:"url" example:"https://example.com/generated.png"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// NewImageGenerationResponse converts a domain result.
func NewImageGenerationResponse(result *imagegen.GenerationResult) ImageGenerationResponse {
	return ImageGenerationResponse{
		URL:           result.URL,
		RevisedPrompt: result.RevisedPrompt,
	}
}

// StylePresetListResponse lists the style presets a client may append to a prompt.
type StylePresetListResponse struct {
	Object string               `json:"object" example:"list"`
	Data   []stylepreset.Preset `json:"data"`
}

// NewStylePresetListResponse builds the preset list in display order.
func NewStylePresetListResponse(presets []stylepreset.Preset) StylePresetListResponse {
	return StylePresetListResponse{Object: "list", Data: presets}
}

// OptionsResponse describes the accepted option values and defaults.
type OptionsResponse struct {
	Sizes     []string       `json:"sizes"`
	Styles    []string       `json:"styles"`
	Qualities []string       `json:"qualities"`
	Defaults  OptionDefaults `json:"defaults"`
}

// OptionDefaults holds the value applied when an option is omitted.
type OptionDefaults struct {
	Size    string `json:"size"`
	Style   string `json:"style"`
	Quality string `json:"quality"`
}

// NewOptionsResponse converts the domain option sets.
func NewOptionsResponse(opts imagegen.Options) OptionsResponse {
	return OptionsResponse{
		Sizes:     toStrings(opts.Sizes),
		Styles:    toStrings(opts.Styles),
		Qualities: toStrings(opts.Qualities),
		Defaults: OptionDefaults{
			Size:    string(opts.DefaultSize),
			Style:   string(opts.DefaultStyle),
			Quality: string(opts.DefaultQuality),
		},
	}
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
