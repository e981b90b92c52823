// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/evaluate": {
            "post": {
                "description": "Converts an infix expression to postfix, builds its tree and evaluates it. Every call is recorded in the history.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evaluation"],
                "summary": "Evaluate an expression",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ExpressionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EvaluateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/api/v1/postfix": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evaluation"],
                "summary": "Convert infix to postfix",
                "parameters": [
                    {
                        "description": "Expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ExpressionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostfixResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/api/v1/tree": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evaluation"],
                "summary": "Build an expression tree from postfix",
                "parameters": [
                    {
                        "description": "Postfix expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TreeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TreeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {}}}
                }
            }
        },
        "/api/v1/history": {
            "get": {
                "description": "Newest first, offset paginated.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "List recorded evaluations",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.ExpressionRequest": {
            "type": "object",
            "properties": {
                "dialect": {"type": "string", "enum": ["arithmetic", "boolean"], "example": "arithmetic"},
                "expression": {"type": "string", "example": "(2 + 3) * 4"}
            }
        },
        "dto.EvaluateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "dialect": {"type": "string"},
                "expression": {"type": "string"},
                "postfix": {"type": "string"},
                "result": {"type": "string"},
                "tree": {"$ref": "#/definitions/dto.Node"}
            }
        },
        "dto.PostfixResponse": {
            "type": "object",
            "properties": {
                "dialect": {"type": "string"},
                "expression": {"type": "string"},
                "postfix": {"type": "string"}
            }
        },
        "dto.TreeRequest": {
            "type": "object",
            "properties": {
                "dialect": {"type": "string", "enum": ["arithmetic", "boolean"], "example": "arithmetic"},
                "postfix": {"type": "string", "example": "2 3 + 4 *"}
            }
        },
        "dto.TreeResponse": {
            "type": "object",
            "properties": {
                "dialect": {"type": "string"},
                "infix": {"type": "string"},
                "postfix": {"type": "string"},
                "root": {"$ref": "#/definitions/dto.Node"},
                "size": {"type": "integer"}
            }
        },
        "dto.Node": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "value": {"type": "string"},
                "left": {"$ref": "#/definitions/dto.Node"},
                "right": {"$ref": "#/definitions/dto.Node"},
                "operand": {"$ref": "#/definitions/dto.Node"}
            }
        },
        "dto.Evaluation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source": {"type": "string"},
                "dialect": {"type": "string"},
                "expression": {"type": "string"},
                "postfix": {"type": "string"},
                "result": {"type": "string"},
                "error": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.Evaluation"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "has_more": {"type": "boolean"}
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
	Title:            "exprtree API",
	Description:      "Arithmetic and boolean expression evaluation with expression trees",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
