package image

import (
	"bytes"
	"encoding/json"

	"jan-server/services/imagegen-api/internal/domain/imagegen"
)

// LooseString accepts any JSON value. Strings decode as-is; other values keep their raw
// JSON text so that option validation can reject them with the usual message.
type LooseString struct {
	Value    string
	Present  bool
	IsString bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	*s = LooseString{}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	s.Present = true

	var str string
	if err := json.Unmarshal(trimmed, &str); err == nil {
		s.Value = str
		s.IsString = true
		return nil
	}
	s.Value = string(trimmed)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s LooseString) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	if s.IsString {
		return json.Marshal(s.Value)
	}
	return []byte(s.Value), nil
}

// ImageGenerationRequest is the body of POST /v1/images/generations.
type ImageGenerationRequest struct {
	// Text description of the desired image.
	Prompt LooseString `json:"prompt" swaggertype:"string" example:"a lighthouse on a cliff at dusk"`
	// One of 1024x1024, 1792x1024, 1024x1792. Defaults to 1024x1024.
	Size LooseString `json:"size,omitempty" swaggertype:"string" example:"1024x1024"`
	// One of natural, vivid. Defaults to vivid.
	Style LooseString `json:"style,omitempty" swaggertype:"string" example:"vivid"`
	// One of standard, hd. Defaults to standard.
	Quality LooseString `json:"quality,omitempty" swaggertype:"string" example:"standard"`
}

// ToDomain converts the body into a domain request. A non-string prompt becomes empty so it
// fails the prompt check; non-string options keep their raw text and fail the enum check.
func (r ImageGenerationRequest) ToDomain() imagegen.GenerationRequest {
	prompt := ""
	if r.Prompt.IsString {
		prompt = r.Prompt.Value
	}
	return imagegen.GenerationRequest{
		Prompt:  prompt,
		Size:    imagegen.Size(r.Size.Value),
		Style:   imagegen.Style(r.Style.Value),
		Quality: imagegen.Quality(r.Quality.Value),
	}
}
