// Package docs serves the OpenAPI document behind /swagger. Regenerate with
// `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/authentication/login": {"post": {"tags": ["Authentication"], "summary": "Sign in with email and password"}},
        "/api/v1/authentication/logout": {"post": {"tags": ["Authentication"], "summary": "Revoke the current session"}},
        "/api/v1/authentication/forgot-password": {"post": {"tags": ["Authentication"], "summary": "Mail a password reset link"}},
        "/api/v1/authentication/reset-password": {"post": {"tags": ["Authentication"], "summary": "Set a new password with a reset code"}},
        "/api/v1/authentication/change-password": {"post": {"tags": ["Authentication"], "summary": "Change the signed-in password"}},
        "/api/v1/users": {
            "get": {"tags": ["Users"], "summary": "List one page of users"},
            "post": {"tags": ["Users"], "summary": "Create a user"}
        },
        "/api/v1/users/{id}": {"delete": {"tags": ["Users"], "summary": "Delete a user profile"}},
        "/api/v1/users/{id}/reset-password": {"post": {"tags": ["Users"], "summary": "Mail a reset link to a user"}},
        "/api/v1/profile": {
            "get": {"tags": ["Profile"], "summary": "Get the signed-in profile"},
            "put": {"tags": ["Profile"], "summary": "Update the signed-in profile"}
        },
        "/api/v1/contacts": {"get": {"tags": ["Contacts"], "summary": "List one page of contact messages"}},
        "/api/v1/contacts/{id}": {"delete": {"tags": ["Contacts"], "summary": "Delete a contact message"}},
        "/api/v1/contacts/export": {"post": {"tags": ["Contacts"], "summary": "Export contacts to CSV"}},
        "/api/v1/query/{collection}": {"post": {"tags": ["Query"], "summary": "Fetch a page of a collection"}},
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check"}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check"}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check"}}
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "admin_auth_token", "in": "cookie"},
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Admin Console API",
	Description:      "Back office API for users, contact messages and collection queries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
