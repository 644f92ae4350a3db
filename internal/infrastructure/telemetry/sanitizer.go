package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"jan-server/services/imagegen-api/internal/config"
)

// PromptLevel controls how much of a user prompt reaches logs.
type PromptLevel string

const (
	// PromptLevelNone replaces the whole prompt.
	PromptLevelNone PromptLevel = "none"
	// PromptLevelHashed keeps the prompt but hashes PII and secrets found in it.
	PromptLevelHashed PromptLevel = "hashed"
	// PromptLevelFull logs the prompt unchanged.
	PromptLevelFull PromptLevel = "full"
)

const redacted = "[REDACTED]"

// ParsePromptLevel accepts none, hashed or full (case-insensitive).
func ParsePromptLevel(value string) (PromptLevel, error) {
	switch level := PromptLevel(strings.ToLower(strings.TrimSpace(value))); level {
	case PromptLevelNone, PromptLevelHashed, PromptLevelFull:
		return level, nil
	default:
		return "", fmt.Errorf("invalid prompt log level %q: must be none, hashed or full", value)
	}
}

// Sanitizer scrubs prompts before they are written to logs or spans.
type Sanitizer struct {
	level PromptLevel
	salt  string

	emailPattern  *regexp.Regexp
	phonePattern  *regexp.Regexp
	cardPattern   *regexp.Regexp
	apiKeyPattern *regexp.Regexp
}

// NewSanitizer creates a sanitizer; salt keeps hashes stable per deployment.
func NewSanitizer(level PromptLevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:         level,
		salt:          salt,
		emailPattern:  regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		phonePattern:  regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		cardPattern:   regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`),
		apiKeyPattern: regexp.MustCompile(`\bsk-[A-Za-z0-9_\-*]{8,}`),
	}
}

// NewSanitizerFromConfig builds the prompt sanitizer from LOG_PROMPT_LEVEL, salted with the service name.
func NewSanitizerFromConfig(cfg *config.Config) *Sanitizer {
	level, err := ParsePromptLevel(cfg.LogPromptLevel)
	if err != nil {
		level = PromptLevelHashed
	}
	return NewSanitizer(level, cfg.ServiceName)
}

// SanitizePrompt applies the configured level to a prompt.
func (s *Sanitizer) SanitizePrompt(input string) string {
	switch s.level {
	case PromptLevelNone:
		return redacted
	case PromptLevelFull:
		return input
	default:
		return s.hashPII(input)
	}
}

// SanitizeSecrets removes API keys regardless of level.
func (s *Sanitizer) SanitizeSecrets(input string) string {
	return s.apiKeyPattern.ReplaceAllString(input, "[API_KEY:REDACTED]")
}

func (s *Sanitizer) hashPII(input string) string {
	result := s.SanitizeSecrets(input)

	// Cards before phones: a card number contains a phone-shaped run.
	result = s.cardPattern.ReplaceAllString(result, "[CC:REDACTED]")

	result = s.emailPattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[EMAIL:%s]", s.hash(match))
	})

	result = s.phonePattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[PHONE:%s]", s.hash(match))
	})

	return result
}

// hash returns the first 8 hex chars of a salted SHA-256.
func (s *Sanitizer) hash(data string) string {
	h := sha256.New()
	h.Write([]byte(data + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:8]
}
