package imagegen

import "fmt"

// FailureKind classifies why the upstream image provider refused or failed a request.
type FailureKind string

const (
	FailureCredential FailureKind = "credential"
	FailurePolicy     FailureKind = "policy"
	FailureContract   FailureKind = "contract"
	FailureUnknown    FailureKind = "unknown"
)

// UpstreamError is returned by ImageProvider implementations when the external call fails.
type UpstreamError struct {
	Kind       FailureKind
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("image provider %s failure (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("image provider %s failure: %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ConfigError reports a setting the provider needs but does not have.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s", e.Setting, e.Reason)
}
