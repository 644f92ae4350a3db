package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	var fromGin, fromCtx string
	engine := newEngine(RequestID(), LoggingMiddleware(zerolog.Nop()), MetricsMiddleware(), TracingMiddleware("test"))
	engine.GET("/ping", func(c *gin.Context) {
		fromGin = GetRequestID(c)
		fromCtx = platformerrors.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := recorder.Header().Get("X-Request-Id")
	assert.NotEmpty(t, header)
	assert.Equal(t, header, fromGin)
	assert.Equal(t, header, fromCtx)
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	engine := newEngine(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-Id"))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{"wildcard", []string{"*"}, "http://app.local", http.MethodGet, "*", http.StatusOK},
		{"listed origin", []string{"http://app.local"}, "http://app.local", http.MethodGet, "http://app.local", http.StatusOK},
		{"unlisted origin", []string{"http://app.local"}, "http://evil.local", http.MethodGet, "", http.StatusOK},
		{"preflight", []string{"*"}, "http://app.local", http.MethodOptions, "*", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(CORS(DefaultCORSConfig(tt.origins)))
			engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "43200", recorder.Header().Get("Access-Control-Max-Age"))
		})
	}
}
