package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/imagegen-api/internal/interfaces/httpserver/handlers"
	imagerequest "jan-server/services/imagegen-api/internal/interfaces/httpserver/requests/image"
	"jan-server/services/imagegen-api/internal/interfaces/httpserver/responses"
	imageresponse "jan-server/services/imagegen-api/internal/interfaces/httpserver/responses/image"
	"jan-server/services/imagegen-api/internal/utils/platformerrors"
)

// RegisterImageRoutes registers the image generation routes.
func RegisterImageRoutes(router gin.IRoutes, handler *handlers.ImageHandler) {
	router.POST("/images/generations", generateImage(handler))
	router.GET("/images/style-presets", listStylePresets(handler))
	router.GET("/images/options", getOptions(handler))
}

// generateImage godoc
// @Summary      Generate an image
// @Description  Validates the prompt and options, calls the upstream image provider and returns the image URL.
// @Description
// @Description  **Size Options:** 1024x1024 (default), 1792x1024 (landscape), 1024x1792 (portrait)
// @Description  **Style Options:** vivid (default), natural
// @Description  **Quality Options:** standard (default), hd
// @Tags         Images API
// @Accept       json
// @Produce      json
// @Param        request body imagerequest.ImageGenerationRequest true "Image generation request"
// @Success      200 {object} imageresponse.ImageGenerationResponse
// @Failure      400 {object} responses.ErrorResponse "Invalid prompt, option or body; or content policy rejection"
// @Failure      401 {object} responses.ErrorResponse "Upstream rejected the API key"
// @Failure      500 {object} responses.ErrorResponse "Missing API key, malformed upstream response or upstream failure"
// @Router       /v1/images/generations [post]
// @Router       /api/generate-image [post]
func generateImage(handler *handlers.ImageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request imagerequest.ImageGenerationRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err)
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "Invalid request body", "imagegen-invalid-body")
			return
		}

		result, err := handler.GenerateImage(c.Request.Context(), request.ToDomain())
		if err != nil {
			_ = c.Error(err)
			responses.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, imageresponse.NewImageGenerationResponse(result))
	}
}

// listStylePresets godoc
// @Summary      List style presets
// @Description  Returns the named style phrases a client may append to a prompt, in display order.
// @Tags         Images API
// @Produce      json
// @Success      200 {object} imageresponse.StylePresetListResponse
// @Router       /v1/images/style-presets [get]
func listStylePresets(handler *handlers.ImageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, imageresponse.NewStylePresetListResponse(handler.StylePresets()))
	}
}

// getOptions godoc
// @Summary      List generation options
// @Description  Returns the accepted size, style and quality values with their defaults.
// @Tags         Images API
// @Produce      json
// @Success      200 {object} imageresponse.OptionsResponse
// @Router       /v1/images/options [get]
func getOptions(handler *handlers.ImageHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, imageresponse.NewOptionsResponse(handler.Options()))
	}
}
