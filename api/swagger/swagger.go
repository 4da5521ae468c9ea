package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Ibdaa DocGen API",
        "description": "Local disciplinary document generator for school administration",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Workspace", "description": "Draft and variant state"},
        {"name": "Directory", "description": "Imported student list"},
        {"name": "Settings", "description": "Branding images and storage"},
        {"name": "Archive", "description": "Saved document snapshots"},
        {"name": "Documents", "description": "Composed document trees"},
        {"name": "Export", "description": "PDF and CSV rendering"},
        {"name": "Relay", "description": "Messaging handoff"}
    ],
    "paths": {
        "/workspace/load": {
            "post": {
                "tags": ["Workspace"],
                "summary": "Load all collections from the local store",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspace": {
            "get": {
                "tags": ["Workspace"],
                "summary": "Current workspace snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Workspace not loaded"}
                }
            }
        },
        "/workspace/draft": {
            "patch": {
                "tags": ["Workspace"],
                "summary": "Merge field values into the draft",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown field"},
                    "412": {"description": "Workspace not loaded"}
                }
            }
        },
        "/workspace/variant": {
            "put": {
                "tags": ["Workspace"],
                "summary": "Switch the active document variant",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetVariantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown variant"}
                }
            }
        },
        "/workspace/reset": {
            "post": {
                "tags": ["Workspace"],
                "summary": "Reset the draft to its defaults",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workspace/select-student": {
            "post": {
                "tags": ["Workspace"],
                "summary": "Prefill the draft from a directory entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not in directory"}
                }
            }
        },
        "/directory": {
            "get": {
                "tags": ["Directory"],
                "summary": "List directory entries",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Directory"],
                "summary": "Replace the student directory",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportDirectoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/suggestions": {
            "get": {
                "tags": ["Directory"],
                "summary": "Autocomplete directory entries by name fragment",
                "parameters": [
                    {"name": "prefix", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Current branding settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Set or clear one branding image",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAssetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings/usage": {
            "get": {
                "tags": ["Settings"],
                "summary": "Local store usage against quota",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/archive": {
            "get": {
                "tags": ["Archive"],
                "summary": "List archive entries, newest first",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Archive"],
                "summary": "Snapshot the draft into the archive",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Draft has no student name"}
                }
            }
        },
        "/archive/{id}": {
            "delete": {
                "tags": ["Archive"],
                "summary": "Delete an archive entry",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "required": true, "type": "boolean"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "412": {"description": "Confirmation required"}
                }
            }
        },
        "/archive/{id}/restore": {
            "post": {
                "tags": ["Archive"],
                "summary": "Restore an archived draft into the workspace",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/workspace/preview": {
            "get": {
                "tags": ["Documents"],
                "summary": "Compose the active draft into its current variant",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/documents/{variant}/preview": {
            "get": {
                "tags": ["Documents"],
                "summary": "Compose the active draft into the requested variant",
                "parameters": [
                    {"name": "variant", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK (placeholder document for unknown variants)", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/pdf": {
            "post": {
                "tags": ["Export"],
                "summary": "Render the active draft to PDF behind a signed link",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/files/{token}": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a rendered document by signed token",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF payload"},
                    "403": {"description": "Link expired or invalid"}
                }
            }
        },
        "/export/archive.csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the archive as CSV",
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/export/directory.csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the student directory as CSV",
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/relay/whatsapp": {
            "post": {
                "tags": ["Relay"],
                "summary": "Build the WhatsApp deep-link handoff for the guardian",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "No guardian phone on the draft"}
                }
            }
        }
    },
    "definitions": {
        "DirectoryEntry": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "grade": {"type": "string"},
                "guardianPhone": {"type": "string"}
            }
        },
        "ArchiveEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "timestamp": {"type": "integer"},
                "studentName": {"type": "string"},
                "grade": {"type": "string"},
                "formType": {"type": "string"},
                "details": {"type": "string"},
                "data": {"type": "object"}
            }
        },
        "SchoolSettings": {
            "type": "object",
            "properties": {
                "ministryLogo": {"type": "string"},
                "schoolStamp": {"type": "string"},
                "principalSignature": {"type": "string"},
                "committeeHeadSignature": {"type": "string"}
            }
        },
        "StorageUsage": {
            "type": "object",
            "properties": {
                "used_bytes": {"type": "integer"},
                "quota_bytes": {"type": "integer"},
                "collections": {"type": "object"}
            }
        },
        "UpdateDraftRequest": {
            "type": "object",
            "required": ["fields"],
            "properties": {
                "fields": {"type": "object"}
            }
        },
        "SetVariantRequest": {
            "type": "object",
            "required": ["variant"],
            "properties": {
                "variant": {"type": "string"}
            }
        },
        "SelectStudentRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "ImportDirectoryRequest": {
            "type": "object",
            "required": ["entries"],
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/DirectoryEntry"}
                }
            }
        },
        "UpdateAssetRequest": {
            "type": "object",
            "required": ["key"],
            "properties": {
                "key": {"type": "string"},
                "data": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
