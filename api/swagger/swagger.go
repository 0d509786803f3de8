package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Recoleta Collector API",
        "description": "Aggregation and lifecycle backend for the collector operations panel",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Reports", "description": "Dashboard and history aggregation"},
        {"name": "Discards", "description": "Collection request listing and map"},
        {"name": "Lifecycle", "description": "Session-scoped acceptance workflow"},
        {"name": "Collectors", "description": "Collector account proxy"}
    ],
    "paths": {
        "/dashboard": {
            "get": {
                "tags": ["Reports"],
                "summary": "Weekly overview with recent totals",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/history": {
            "get": {
                "tags": ["Reports"],
                "summary": "Twelve-month history with filters and month drill-down",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string", "enum": ["pending", "accepted", "received"]},
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "bucket", "in": "query", "type": "string"},
                    {"name": "view", "in": "query", "type": "string", "enum": ["monthly", "weekly"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/discards": {
            "get": {
                "tags": ["Discards"],
                "summary": "Collection requests for the authenticated collector",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "refresh", "in": "query", "type": "boolean"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/discards/markers": {
            "get": {
                "tags": ["Discards"],
                "summary": "GeoJSON markers and map center for plottable requests",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/discards/{id}/advance": {
            "post": {
                "tags": ["Lifecycle"],
                "summary": "Advance a request one lifecycle step",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid request id", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/lifecycle/log": {
            "get": {
                "tags": ["Lifecycle"],
                "summary": "Session acceptance log",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Lifecycle"],
                "summary": "Clear lifecycle state and acceptance log",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/collectors/me": {
            "get": {
                "tags": ["Collectors"],
                "summary": "Authenticated collector profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collectors/{id}": {
            "put": {
                "tags": ["Collectors"],
                "summary": "Update a collector profile",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CollectorProfile"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Not the token owner", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/monthly/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the monthly report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "ReportBucket": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "periodKey": {"type": "string"},
                "pendentes": {"type": "integer"},
                "aceitos": {"type": "integer"},
                "recebidos": {"type": "integer"}
            }
        },
        "CollectorProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "cnpj": {"type": "string"},
                "phone": {"type": "string"}
            },
            "required": ["name", "email"]
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
