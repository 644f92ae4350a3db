package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// LoggingMiddleware logs HTTP requests with OpenTelemetry trace context
func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		level := zerolog.InfoLevel
		if statusCode >= 500 {
			level = zerolog.ErrorLevel
		} else if statusCode >= 400 {
			level = zerolog.WarnLevel
		}
		logEvent := logger.WithLevel(level)

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			logEvent = logEvent.
				Str("trace_id", span.SpanContext().TraceID().String()).
				Str("span_id", span.SpanContext().SpanID().String())
		}

		if requestID := GetRequestID(c); requestID != "" {
			logEvent = logEvent.Str("request_id", requestID)
		}

		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			logEvent = logEvent.Str("errors", errs)
		}

		logEvent.
			Str("client_ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Int("status", statusCode).
			Dur("latency", latency).
			Str("user_agent", c.Request.UserAgent()).
			Msg("request completed")
	}
}
