// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go -o internal/api/docs`.
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NavViewModel"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NavViewModel"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new customer",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Session"}}
                }
            }
        },
        "/api/nav": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Navigation bar",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NavViewModel"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.productView"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Cart contents",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.cartResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add a product to the cart",
                "parameters": [
                    {"description": "Product and quantity", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.cartItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.CartSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List or search users, grouped by role",
                "parameters": [
                    {"type": "string", "description": "username, email, national_id, name or phone_number", "name": "by", "in": "query"},
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UsersByRole"}},
                    "202": {"description": "Session still resolving"},
                    "302": {"description": "Redirect to the fallback route"}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "fields": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string", "minLength": 6},
                "name": {"type": "string"}, "last_name": {"type": "string"}, "national_id": {"type": "string"},
                "address": {"type": "string"}, "state": {"type": "string"}, "city": {"type": "string"}, "phone_number": {"type": "string"}
            }
        },
        "handler.cartItemRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {"product_id": {"type": "integer"}, "quantity": {"type": "integer"}}
        },
        "handler.cartResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "summary": {"$ref": "#/definitions/domain.CartSummary"}
            }
        },
        "handler.productView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"},
                "price": {"type": "number"}, "final_price": {"type": "number"}, "stock": {"type": "integer"},
                "minimum_order": {"type": "integer"}, "category_id": {"type": "integer"}, "image": {"type": "string"}
            }
        },
        "domain.CartSummary": {
            "type": "object",
            "properties": {"item_count": {"type": "integer"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "username": {"type": "string"}, "role": {"type": "string", "enum": ["customer", "staff", "admin"]},
                "name": {"type": "string"}, "last_name": {"type": "string"}, "email": {"type": "string"}
            }
        },
        "domain.Session": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["unknown", "anonymous", "authenticated"]},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "domain.Link": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "label": {"type": "string"}, "path": {"type": "string"}}
        },
        "domain.NavViewModel": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/domain.Session"},
                "display_name": {"type": "string"},
                "cart_count": {"type": "integer"},
                "core_links": {"type": "array", "items": {"$ref": "#/definitions/domain.Link"}},
                "menu_links": {"type": "array", "items": {"$ref": "#/definitions/domain.Link"}},
                "show_auth_controls": {"type": "boolean"},
                "show_logout": {"type": "boolean"},
                "show_admin_toggle": {"type": "boolean"}
            }
        },
        "domain.UsersByRole": {
            "type": "object",
            "properties": {
                "admin": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}},
                "staff": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}},
                "customer": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}
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
	Title:            "Storefront Gateway API",
	Description:      "Session-aware gateway between the storefront UI and the shop REST backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
