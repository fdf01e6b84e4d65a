// Package docs holds the generated swagger document served at /swagger/.
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
        "/api/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List documents for the tenant",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Create a document",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/documents/{document_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Get a document",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "document_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/documents/{document_id}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Approve a document and notify relevant users",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "document_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/distribution/rules": {
            "get": {
                "produces": ["application/json"],
                "tags": ["distribution"],
                "summary": "List distribution rules for the tenant",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["distribution"],
                "summary": "Create a distribution rule",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true}
                ],
                "responses": {"201": {"description": "Created"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["distribution"],
                "summary": "Replace all rules of a contract",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/distribution/rules/{rule_id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["distribution"],
                "summary": "Update a distribution rule",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "rule_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["distribution"],
                "summary": "Deactivate a distribution rule",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "rule_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "List notifications of the acting user",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/notifications/unread-count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Count unread notifications of the acting user",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/notifications/{notification_id}/read": {
            "post": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark a notification as read",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "notification_id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/distribution/event-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "List distribution delivery logs",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/system-events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "List system event logs",
                "parameters": [
                    {"type": "string", "name": "X-Tenant-Id", "in": "header", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "DocFlow Distribution API",
	Description:      "Document lifecycle, distribution rules, and notification fan-out.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
