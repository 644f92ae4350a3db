// Package credentials resolves the upstream image provider API key.
package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog"

	"jan-server/services/imagegen-api/internal/config"
)

// Fetcher reads a single secret value by name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// ParameterAPI is the subset of the SSM client used by ParameterStoreFetcher.
type ParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ParameterStoreFetcher reads SecureString parameters from AWS Systems Manager Parameter Store.
type ParameterStoreFetcher struct {
	client ParameterAPI
}

// NewParameterStoreFetcher wraps an SSM client.
func NewParameterStoreFetcher(client ParameterAPI) *ParameterStoreFetcher {
	return &ParameterStoreFetcher{client: client}
}

// NewDefaultParameterStoreFetcher loads the default AWS configuration chain and builds a fetcher.
func NewDefaultParameterStoreFetcher(ctx context.Context) (*ParameterStoreFetcher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewParameterStoreFetcher(ssm.NewFromConfig(awsCfg)), nil
}

// Fetch implements Fetcher.
func (f *ParameterStoreFetcher) Fetch(ctx context.Context, name string) (string, error) {
	out, err := f.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if out.Parameter == nil {
		return "", nil
	}
	return aws.ToString(out.Parameter.Value), nil
}

// ResolveAPIKey returns OPENAI_API_KEY when set, otherwise the value of the
// OPENAI_API_KEY_PARAM parameter. An empty result is not an error; provider
// construction reports the missing key.
func ResolveAPIKey(ctx context.Context, cfg *config.Config, fetcher Fetcher, log zerolog.Logger) (string, error) {
	if key := strings.TrimSpace(cfg.OpenAIAPIKey); key != "" {
		return key, nil
	}

	param := strings.TrimSpace(cfg.OpenAIAPIKeyParam)
	if param == "" || fetcher == nil {
		return "", nil
	}

	log.Info().Str("parameter", param).Msg("fetching image provider API key from parameter store")
	value, err := fetcher.Fetch(ctx, param)
	if err != nil {
		return "", fmt.Errorf("fetch parameter %s: %w", param, err)
	}
	return strings.TrimSpace(value), nil
}
