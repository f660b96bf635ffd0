package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA Schedule API",
        "description": "Searchable, filterable and paginated class schedules with interactive query views",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Schedules", "description": "General class schedule"},
        {"name": "Teacher Schedules", "description": "Per-teacher schedule, teachers and admins only"},
        {"name": "Query Views", "description": "Stateful search, filter, sort and paging over a schedule"},
        {"name": "Observability", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Observability"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Observability"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Observability"],
                "summary": "Aggregated runtime metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List schedule entries",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "faculty", "in": "query", "type": "string"},
                    {"name": "class_name", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "room", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules/filters": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Distinct values of each filterable field",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Export every matching entry",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"}
                ],
                "responses": {
                    "200": {"description": "File attachment"}
                }
            }
        },
        "/api/v1/teacher/schedules": {
            "get": {
                "tags": ["Teacher Schedules"],
                "summary": "List teacher schedule entries",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "teacherId", "in": "query", "type": "string", "description": "Admins only; teachers always see their own"},
                    {"$ref": "#/parameters/search"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "class_name", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "room", "in": "query", "type": "string"},
                    {"name": "mode", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"$ref": "#/parameters/from"},
                    {"$ref": "#/parameters/to"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/api/v1/teacher/schedules/filters": {
            "get": {
                "tags": ["Teacher Schedules"],
                "summary": "Distinct values of each filterable teacher field",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/teacher/schedules/export": {
            "get": {
                "tags": ["Teacher Schedules"],
                "summary": "Export matching teacher entries",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"}
                }
            }
        },
        "/api/v1/views": {
            "post": {
                "tags": ["Query Views"],
                "summary": "Open a query view",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateViewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}": {
            "get": {
                "tags": ["Query Views"],
                "summary": "Render the current page of a view",
                "parameters": [{"$ref": "#/parameters/viewId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Query Views"],
                "summary": "Discard a view",
                "parameters": [{"$ref": "#/parameters/viewId"}],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/v1/views/{id}/filters": {
            "patch": {
                "tags": ["Query Views"],
                "summary": "Merge search, filter and date range changes",
                "parameters": [
                    {"$ref": "#/parameters/viewId"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateViewFiltersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}/sort": {
            "post": {
                "tags": ["Query Views"],
                "summary": "Sort by a field, toggling direction when it is already active",
                "parameters": [
                    {"$ref": "#/parameters/viewId"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"field": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}/clear": {
            "post": {
                "tags": ["Query Views"],
                "summary": "Reset search, filters and sort",
                "parameters": [{"$ref": "#/parameters/viewId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}/page": {
            "put": {
                "tags": ["Query Views"],
                "summary": "Move to a page",
                "parameters": [
                    {"$ref": "#/parameters/viewId"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"page": {"type": "integer"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}/page-size": {
            "put": {
                "tags": ["Query Views"],
                "summary": "Change the page size",
                "parameters": [
                    {"$ref": "#/parameters/viewId"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"pageSize": {"type": "integer"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/views/{id}/refresh": {
            "post": {
                "tags": ["Query Views"],
                "summary": "Reload records from the source",
                "parameters": [{"$ref": "#/parameters/viewId"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "parameters": {
        "search": {"name": "search", "in": "query", "type": "string"},
        "from": {"name": "from", "in": "query", "type": "string", "format": "date"},
        "to": {"name": "to", "in": "query", "type": "string", "format": "date"},
        "sort": {"name": "sort", "in": "query", "type": "string"},
        "order": {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]},
        "page": {"name": "page", "in": "query", "type": "integer"},
        "limit": {"name": "limit", "in": "query", "type": "integer"},
        "viewId": {"name": "id", "in": "path", "required": true, "type": "string"}
    },
    "definitions": {
        "CreateViewRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "kind": {"type": "string", "enum": ["general", "teacher"]},
                "teacherId": {"type": "string"},
                "pageSize": {"type": "integer"}
            }
        },
        "UpdateViewFiltersRequest": {
            "type": "object",
            "properties": {
                "search": {"type": "string"},
                "filters": {"type": "object", "additionalProperties": {"type": "string"}},
                "dateRange": {
                    "type": "object",
                    "properties": {
                        "from": {"type": "string", "format": "date"},
                        "to": {"type": "string", "format": "date"}
                    }
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
