// Package responses contains HTTP response helpers for the imagegen-api.
// Image-specific response types are in the image subpackage.
package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// ErrorResponse documents the error body written by every endpoint.
type ErrorResponse = platformerrors.HTTPErrorResponse

// HandleError writes err as an HTTP response, mapping platform error types to status codes.
func HandleError(c *gin.Context, err error) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()
	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like malformed bodies.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message, errorUUID string) {
	HandleError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, errorUUID))
}
