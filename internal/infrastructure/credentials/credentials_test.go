package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/imagegen-api/internal/config"
)

type mockParameterAPI struct {
	GetParameterFunc func(ctx context.Context, params *ssm.GetParameterInput) (*ssm.GetParameterOutput, error)
	calls            []*ssm.GetParameterInput
}

func (m *mockParameterAPI) GetParameter(ctx context.Context, params *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	m.calls = append(m.calls, params)
	if m.GetParameterFunc != nil {
		return m.GetParameterFunc(ctx, params)
	}
	return &ssm.GetParameterOutput{}, nil
}

func TestParameterStoreFetcherRequestsDecryption(t *testing.T) {
	api := &mockParameterAPI{
		GetParameterFunc: func(_ context.Context, params *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
			return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("sk-from-ssm")}}, nil
		},
	}

	value, err := NewParameterStoreFetcher(api).Fetch(context.Background(), "/imagegen/openai-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-from-ssm", value)

	require.Len(t, api.calls, 1)
	assert.Equal(t, "/imagegen/openai-key", aws.ToString(api.calls[0].Name))
	assert.True(t, aws.ToBool(api.calls[0].WithDecryption))
}

func TestResolveAPIKey(t *testing.T) {
	ssmValue := func(value string, err error) *ParameterStoreFetcher {
		return NewParameterStoreFetcher(&mockParameterAPI{
			GetParameterFunc: func(context.Context, *ssm.GetParameterInput) (*ssm.GetParameterOutput, error) {
				if err != nil {
					return nil, err
				}
				return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(value)}}, nil
			},
		})
	}

	tests := []struct {
		name    string
		cfg     config.Config
		fetcher Fetcher
		want    string
		wantErr bool
	}{
		{"env wins", config.Config{OpenAIAPIKey: "sk-env", OpenAIAPIKeyParam: "/p"}, ssmValue("sk-ssm", nil), "sk-env", false},
		{"parameter fallback", config.Config{OpenAIAPIKeyParam: "/p"}, ssmValue(" sk-ssm\n", nil), "sk-ssm", false},
		{"nothing configured", config.Config{}, nil, "", false},
		{"parameter without fetcher", config.Config{OpenAIAPIKeyParam: "/p"}, nil, "", false},
		{"fetch failure", config.Config{OpenAIAPIKeyParam: "/p"}, ssmValue("", errors.New("AccessDenied")), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAPIKey(context.Background(), &tt.cfg, tt.fetcher, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
