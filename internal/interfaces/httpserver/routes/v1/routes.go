package v1

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/imagegen-api/internal/interfaces/httpserver/handlers"
)

// Routes holds the v1 route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new v1 routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers all v1 routes on the engine, plus the legacy generate-image path.
func (r *Routes) Register(engine *gin.Engine) {
	v1 := engine.Group("/v1")
	RegisterImageRoutes(v1, r.handlers.Image)

	engine.POST("/api/generate-image", generateImage(r.handlers.Image))
}
