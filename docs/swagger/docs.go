// Package swagger provides API documentation
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/images/generations": {
            "post": {
                "description": "Validates the prompt and options, calls the upstream image provider and returns the image URL.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Images API"],
                "summary": "Generate an image",
                "parameters": [
                    {
                        "description": "Image generation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/image.ImageGenerationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/image.ImageGenerationResponse"}},
                    "400": {"description": "Invalid prompt, option or body; or content policy rejection", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}},
                    "401": {"description": "Upstream rejected the API key", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}},
                    "500": {"description": "Missing API key, malformed upstream response or upstream failure", "schema": {"$ref": "#/definitions/platformerrors.HTTPErrorResponse"}}
                }
            }
        },
        "/v1/images/style-presets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Images API"],
                "summary": "List style presets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/image.StylePresetListResponse"}}
                }
            }
        },
        "/v1/images/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Images API"],
                "summary": "List generation options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/image.OptionsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "image.ImageGenerationRequest": {
            "type": "object",
            "required": ["prompt"],
            "properties": {
                "prompt": {"type": "string", "example": "a lighthouse on a cliff at dusk"},
                "size": {"type": "string", "enum": ["1024x1024", "1792x1024", "1024x1792"], "example": "1024x1024"},
                "style": {"type": "string", "enum": ["natural", "vivid"], "example": "vivid"},
                "quality": {"type": "string", "enum": ["standard", "hd"], "example": "standard"}
            }
        },
        "image.ImageGenerationResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string", "example": "https://example.com/generated.png"},
                "revised_prompt": {"type": "string"}
            }
        },
        "image.StylePresetListResponse": {
            "type": "object",
            "properties": {
                "object": {"type": "string", "example": "list"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/stylepreset.Preset"}}
            }
        },
        "stylepreset.Preset": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "phrase": {"type": "string"}
            }
        },
        "image.OptionsResponse": {
            "type": "object",
            "properties": {
                "sizes": {"type": "array", "items": {"type": "string"}},
                "styles": {"type": "array", "items": {"type": "string"}},
                "qualities": {"type": "array", "items": {"type": "string"}},
                "defaults": {
                    "type": "object",
                    "properties": {
                        "size": {"type": "string"},
                        "style": {"type": "string"},
                        "quality": {"type": "string"}
                    }
                }
            }
        },
        "platformerrors.HTTPErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "string"},
                "type": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Image Generation API",
	Description:      "Text-to-image generation gateway",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
