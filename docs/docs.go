// Package docs registers the OpenAPI document for the team leaders service.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/": {
            "get": {
                "description": "Fetches team leaders once and renders every category chart; switching categories happens in the browser",
                "produces": ["text/html"],
                "tags": ["Pages"],
                "summary": "Team Leaders Page",
                "parameters": [
                    {"type": "string", "description": "Category to pre-select", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}},
                    "502": {"description": "HTML page in error state", "schema": {"type": "string"}}
                }
            }
        },
        "/api/leaders": {
            "get": {
                "description": "Top 5 teams of every statistical category, in upstream order",
                "produces": ["application/json"],
                "tags": ["Leaders"],
                "summary": "Team Leaders",
                "parameters": [
                    {"type": "string", "description": "Category to mark as selected", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LeadersResponse"}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/leaders/{category}/chart.svg": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["Leaders"],
                "summary": "Category Chart",
                "parameters": [
                    {"type": "string", "description": "Category name (e.g. passingYards)", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "SVG document", "schema": {"type": "string"}},
                    "404": {"description": "Unknown Category", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Upstream Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.Category": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string"},
                "leaders": {"type": "array", "items": {"$ref": "#/definitions/models.TeamLeader"}},
                "name": {"type": "string"}
            }
        },
        "models.LeadersResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}},
                "selected": {"type": "string"}
            }
        },
        "models.TeamLeader": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "team": {"type": "string"},
                "value": {"type": "number"}
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
	Title:            "NFL Team Leaders API",
	Description:      "Top NFL teams per statistical category, as a page, JSON and SVG charts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
