package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tech Club Site API",
        "description": "Events and projects catalog rendered as cards, plus CSV/PDF exports.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Upcoming and past event cards"},
        {"name": "Projects", "description": "Project cards"},
        {"name": "Ops", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness check, true once a catalog snapshot is loaded",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Catalog not loaded"}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List event cards grouped into upcoming and past",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Catalog not loaded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get one event card",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events/export": {
            "get": {
                "tags": ["Events"],
                "summary": "Download events as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "group", "in": "query", "type": "string", "enum": ["upcoming", "past", "all"], "default": "all"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Unsupported format or group", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List project cards",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/projects/{id}": {
            "get": {
                "tags": ["Projects"],
                "summary": "Get one project card",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/projects/export": {
            "get": {
                "tags": ["Projects"],
                "summary": "Download projects as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Badge": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "tone": {"type": "string", "enum": ["green", "blue", "purple", "gray", "cyan", "yellow"]},
                "style": {"type": "string", "enum": ["solid", "outline"]}
            }
        },
        "DetailRow": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "Action": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "icon": {"type": "string"},
                "href": {"type": "string"},
                "tone": {"type": "string"},
                "inert": {"type": "boolean"}
            }
        },
        "EventCard": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "variant": {"type": "string", "enum": ["full", "condensed"]},
                "image": {"type": "string"},
                "imageAlt": {"type": "string"},
                "typeBadge": {"$ref": "#/definitions/Badge"},
                "statusBadge": {"$ref": "#/definitions/Badge"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dateLine": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/DetailRow"}},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/Action"}},
                "animationDelayMs": {"type": "integer"}
            }
        },
        "ProjectCard": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "imageAlt": {"type": "string"},
                "categoryIcon": {"type": "string"},
                "statusBadge": {"$ref": "#/definitions/Badge"},
                "categoryBadge": {"$ref": "#/definitions/Badge"},
                "title": {"type": "string"},
                "dateLine": {"type": "string"},
                "description": {"type": "string"},
                "techBadges": {"type": "array", "items": {"$ref": "#/definitions/Badge"}},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/Action"}},
                "animationDelayMs": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
