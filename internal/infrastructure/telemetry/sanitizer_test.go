package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/imagegen-api/internal/config"
)

func TestParsePromptLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    PromptLevel
		wantErr bool
	}{
		{"none", PromptLevelNone, false},
		{"HASHED", PromptLevelHashed, false},
		{" full ", PromptLevelFull, false},
		{"partial", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePromptLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizePrompt_None(t *testing.T) {
	s := NewSanitizer(PromptLevelNone, "imagegen-api")
	assert.Equal(t, "[REDACTED]", s.SanitizePrompt("a cat on a sofa"))
}

func TestSanitizePrompt_Full(t *testing.T) {
	s := NewSanitizer(PromptLevelFull, "imagegen-api")
	input := "poster for john@example.com"
	assert.Equal(t, input, s.SanitizePrompt(input))
}

func TestSanitizePrompt_Hashed(t *testing.T) {
	s := NewSanitizer(PromptLevelHashed, "imagegen-api")

	tests := []struct {
		name     string
		input    string
		gone     string
		contains string
	}{
		{"email", "a poster for john.doe@example.com in neon", "john.doe@example.com", "[EMAIL:"},
		{"phone", "billboard with 555-123-4567 in big letters", "555-123-4567", "[PHONE:"},
		{"card", "a card reading 4111 1111 1111 1111", "4111 1111 1111 1111", "[CC:REDACTED]"},
		{"api key", "a sign saying sk-proj-abcdef123456", "sk-proj-abcdef123456", "[API_KEY:REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.SanitizePrompt(tt.input)
			assert.NotContains(t, result, tt.gone)
			assert.Contains(t, result, tt.contains)
		})
	}
}

func TestSanitizePrompt_HashedLeavesPlainTextAlone(t *testing.T) {
	s := NewSanitizer(PromptLevelHashed, "imagegen-api")
	input := "a watercolor lighthouse at dusk. oil painting style"
	assert.Equal(t, input, s.SanitizePrompt(input))
}

func TestHashIsStablePerSalt(t *testing.T) {
	a := NewSanitizer(PromptLevelHashed, "salt-a")
	b := NewSanitizer(PromptLevelHashed, "salt-b")

	assert.Equal(t, a.hash("john@example.com"), a.hash("john@example.com"))
	assert.NotEqual(t, a.hash("john@example.com"), b.hash("john@example.com"))
	assert.Len(t, a.hash("x"), 8)
}

func TestSanitizeSecrets(t *testing.T) {
	s := NewSanitizer(PromptLevelFull, "imagegen-api")
	msg := "Incorrect API key provided: sk-abc12****************wxyz"
	assert.Equal(t, "Incorrect API key provided: [API_KEY:REDACTED]", s.SanitizeSecrets(msg))
}

func TestNewSanitizerFromConfig(t *testing.T) {
	s := NewSanitizerFromConfig(&config.Config{ServiceName: "imagegen-api", LogPromptLevel: "none"})
	assert.Equal(t, PromptLevelNone, s.level)
	assert.Equal(t, "imagegen-api", s.salt)

	fallback := NewSanitizerFromConfig(&config.Config{LogPromptLevel: "bogus"})
	assert.Equal(t, PromptLevelHashed, fallback.level)
}
