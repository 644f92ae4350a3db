// Package gatewayclient is an HTTP client for the image generation gateway.
package gatewayclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

const (
	DefaultBaseURL = "http://localhost:8187"
	generatePath   = "/v1/images/generations"
	presetsPath    = "/v1/images/style-presets"
)

// Request is the body sent to the gateway. Empty options are omitted so the server applies defaults.
type Request struct {
	Prompt  string `json:"prompt"`
	Size    string `json:"size,omitempty"`
	Style   string `json:"style,omitempty"`
	Quality string `json:"quality,omitempty"`
}

// Result is a successful generation.
type Result struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// Preset mirrors one entry of the style preset catalogue.
type Preset struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Phrase string `json:"phrase"`
}

// APIError is returned when the gateway answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.Details)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type errorBody struct {
	Error     string `json:"error"`
	Details   string `json:"details"`
	RequestID string `json:"request_id"`
}

// Client calls the gateway over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a client for the gateway at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "imagegen-cli/1.0").
		SetTimeout(timeout)
	return &Client{http: client}
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// Generate requests one image.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(generatePath)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}

	respBytes := resp.Bytes()
	if resp.StatusCode() >= 400 {
		return nil, decodeError(resp.StatusCode(), respBytes)
	}

	var result Result
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("response did not include an image URL")
	}
	return &result, nil
}

// StylePresets fetches the preset catalogue from the gateway.
func (c *Client) StylePresets(ctx context.Context) ([]Preset, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(presetsPath)
	if err != nil {
		return nil, fmt.Errorf("style preset request failed: %w", err)
	}

	respBytes := resp.Bytes()
	if resp.StatusCode() >= 400 {
		return nil, decodeError(resp.StatusCode(), respBytes)
	}

	var list struct {
		Data []Preset `json:"data"`
	}
	if err := json.Unmarshal(respBytes, &list); err != nil {
		return nil, fmt.Errorf("decode style presets: %w", err)
	}
	return list.Data, nil
}

func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		apiErr.Message = parsed.Error
		apiErr.Details = parsed.Details
		apiErr.RequestID = parsed.RequestID
		return apiErr
	}
	apiErr.Message = fmt.Sprintf("gateway returned status %d", status)
	apiErr.Details = strings.TrimSpace(string(body))
	return apiErr
}
