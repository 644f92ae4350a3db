package routes

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/imagegen-api/internal/interfaces/httpserver/handlers"
	v1 "jan-server/services/imagegen-api/internal/interfaces/httpserver/routes/v1"
)

// Provider holds all route providers.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider),
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.V1.Register(engine)
}
