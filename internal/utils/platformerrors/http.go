package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the error body returned by every endpoint.
// The top-level "error" string stays compatible with clients that only read that field.
type HTTPErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Type      string `json:"type,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteHTTPError writes a PlatformError as an HTTP response.
// It maps the error type to an appropriate HTTP status code and formats the response.
func WriteHTTPError(c *gin.Context, err *PlatformError, log zerolog.Logger) {
	if err == nil {
		c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
			Error: "unknown error",
			Type:  "internal_error",
		})
		return
	}

	LogError(log, err)

	requestID := err.RequestID
	if requestID == "" {
		requestID = RequestIDFromContext(c.Request.Context())
	}

	c.JSON(ErrorTypeToHTTPStatus(err.Type), HTTPErrorResponse{
		Error:     err.Message,
		Details:   err.Details,
		Type:      ErrorTypeToString(err.Type),
		Code:      err.UUID,
		RequestID: requestID,
	})
}

// WriteError writes a generic error as an HTTP response.
// Errors that are not PlatformErrors are treated as internal errors.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		WriteHTTPError(c, nil, log)
		return
	}

	if platformErr := GetPlatformError(err); platformErr != nil {
		WriteHTTPError(c, platformErr, log)
		return
	}

	WriteHTTPError(c, NewError(c.Request.Context(), LayerHandler, ErrorTypeInternal, "internal server error", err, ""), log)
}

// ErrorTypeToString converts an ErrorType to a snake_case string for API responses.
func ErrorTypeToString(t ErrorType) string {
	switch t {
	case ErrorTypeNotFound:
		return "not_found_error"
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypePolicyViolation:
		return "policy_violation_error"
	case ErrorTypeUnauthorized:
		return "unauthorized_error"
	case ErrorTypeConfiguration:
		return "configuration_error"
	case ErrorTypeNotImplemented:
		return "not_implemented_error"
	case ErrorTypeExternal:
		return "external_error"
	case ErrorTypeInternal:
		fallthrough
	default:
		return "internal_error"
	}
}
