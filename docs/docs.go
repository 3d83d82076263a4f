// Package docs registers the tracker's OpenAPI document with swag so the
// swagger UI can serve it.
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
        "/api/commits": {
            "get": {
                "description": "Lists the latest commits of a public GitHub repository in API order.",
                "produces": ["application/json"],
                "tags": ["commits"],
                "summary": "List commits",
                "parameters": [
                    {"type": "string", "description": "Repository owner", "name": "owner", "in": "query", "required": true},
                    {"type": "string", "description": "Repository name", "name": "repo", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Missing owner or repository", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "GitHub request failed", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "response.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
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
	Title:            "GitHub Commit Tracker API",
	Description:      "Commit lookup for the tracker page.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
