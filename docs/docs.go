// Package docs registers the swagger document served at /swagger. It is
// maintained by hand alongside the swag annotations on the handlers.
package docs

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
        "/api/v1/export": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["transcriptions"],
                "summary": "Export the transcription history",
                "parameters": [
                    {"enum": ["csv", "json", "xlsx"], "type": "string", "default": "xlsx", "description": "Export format", "name": "format", "in": "query"},
                    {"type": "integer", "default": 10000, "description": "Maximum rows", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "History file", "schema": {"type": "file"}},
                    "422": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/api/v1/transcriptions": {
            "get": {
                "description": "Returns the newest history rows first",
                "produces": ["application/json"],
                "tags": ["transcriptions"],
                "summary": "List recent transcriptions",
                "parameters": [
                    {"maximum": 500, "minimum": 1, "type": "integer", "default": 50, "description": "Maximum rows", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "History rows",
                        "schema": {"$ref": "#/definitions/dto.TranscriptionListResponse"},
                        "headers": {"X-Total-Count": {"type": "string", "description": "Number of rows returned"}}
                    },
                    "422": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/transcribe": {
            "post": {
                "description": "Accepts one audio file (opus, mp3, wav, m4a) in the multipart field \"file\" and returns its transcription",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["transcribe"],
                "summary": "Transcribe an audio file",
                "parameters": [
                    {"type": "file", "description": "Audio file to transcribe", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Transcription text", "schema": {"$ref": "#/definitions/dto.TranscribeResponse"}},
                    "400": {"description": "Missing file or unsupported format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Transcription failed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Formato no soportado"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "engine": {"type": "string", "example": "whispercpp"},
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "integer"}
            }
        },
        "dto.TranscribeResponse": {
            "type": "object",
            "properties": {
                "filename": {"type": "string", "example": "nota.opus"},
                "text": {"type": "string", "example": "hola mundo"}
            }
        },
        "dto.TranscriptionListResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.Transcription"}}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "model.Transcription": {
            "type": "object",
            "properties": {
                "archive_key": {"type": "string"},
                "created_at": {"type": "string"},
                "engine": {"type": "string"},
                "error": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "integer"},
                "request_id": {"type": "string"},
                "size_bytes": {"type": "integer"},
                "text": {"type": "string"}
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
	Title:            "Transcriptor de Audio",
	Description:      "Upload an audio file and get its transcription.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
