package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Practicas API",
        "description": "Backend for academic practice management (placements, surveys, activities, authorization letters)",
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
        {"name": "Auth", "description": "Authentication"},
        {"name": "Practices", "description": "Practice placements and the management board"},
        {"name": "Surveys", "description": "Student and collaborator satisfaction surveys"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Centers", "description": "Practice centers"},
        {"name": "Collaborators", "description": "Collaborating teachers at centers"},
        {"name": "Tutors", "description": "Academic tutors"},
        {"name": "Activities", "description": "Practice activities and evidence"},
        {"name": "Letters", "description": "Authorization letters"},
        {"name": "Catalogs", "description": "Cached select catalogs"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current account info",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/practicas": {
            "get": {
                "tags": ["Practices"],
                "summary": "List practices",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "rut", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Practices"],
                "summary": "Create practice placement",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePracticeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Overlapping active practice"}
                }
            }
        },
        "/practicas/board": {
            "get": {
                "tags": ["Practices"],
                "summary": "Practice management board",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "tipo", "in": "query", "type": "string"},
                    {"name": "centro", "in": "query", "type": "string"},
                    {"name": "colaborador", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "desde", "in": "query", "type": "string"},
                    {"name": "hasta", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/practicas/stream": {
            "get": {
                "tags": ["Practices"],
                "summary": "Stream practice change events (SSE)",
                "produces": ["text/event-stream"],
                "responses": {
                    "200": {"description": "Event stream"}
                }
            }
        },
        "/practicas/{id}": {
            "get": {
                "tags": ["Practices"],
                "summary": "Get practice detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/practicas/{id}/estado": {
            "patch": {
                "tags": ["Practices"],
                "summary": "Update practice status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePracticeStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas": {
            "post": {
                "tags": ["Surveys"],
                "summary": "Submit a survey",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSurveyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/estudiantiles": {
            "get": {
                "tags": ["Surveys"],
                "summary": "List student surveys",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/estudiantiles/{id}": {
            "get": {
                "tags": ["Surveys"],
                "summary": "Get student survey detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/colaboradores": {
            "get": {
                "tags": ["Surveys"],
                "summary": "List collaborator surveys",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/colaboradores/{id}": {
            "get": {
                "tags": ["Surveys"],
                "summary": "Get collaborator survey detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/{id}/respuestas-abiertas": {
            "patch": {
                "tags": ["Surveys"],
                "summary": "Update open answers of a survey",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOpenAnswersRequest"}}
                ],
                "responses": {
                    "200": {"description": "Processed count", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/encuestas/{id}/export": {
            "get": {
                "tags": ["Surveys"],
                "summary": "Export a survey as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "tipo", "in": "query", "type": "string", "enum": ["ESTUDIANTIL", "COLABORADORES_JEFES"]},
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/estudiantes": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate RUT"}
                }
            }
        },
        "/estudiantes/{rut}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Update student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "rut", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/centros": {
            "get": {
                "tags": ["Centers"],
                "summary": "List centers",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "tipo", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Centers"],
                "summary": "Create center",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CenterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/centros/{id}": {
            "get": {
                "tags": ["Centers"],
                "summary": "Get center",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Centers"],
                "summary": "Update center",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CenterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Centers"],
                "summary": "Delete center",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/colaboradores": {
            "get": {
                "tags": ["Collaborators"],
                "summary": "List collaborators",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Collaborators"],
                "summary": "Create collaborator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PersonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/colaboradores/{id}": {
            "get": {
                "tags": ["Collaborators"],
                "summary": "Get collaborator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Collaborators"],
                "summary": "Update collaborator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PersonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Collaborators"],
                "summary": "Delete collaborator",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/tutores": {
            "get": {
                "tags": ["Tutors"],
                "summary": "List tutors",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Tutors"],
                "summary": "Create tutor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PersonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tutores/{id}": {
            "get": {
                "tags": ["Tutors"],
                "summary": "Get tutor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Tutors"],
                "summary": "Update tutor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PersonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Tutors"],
                "summary": "Delete tutor",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/actividades": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "mes", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Create activity",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/actividades/{id}": {
            "get": {
                "tags": ["Activities"],
                "summary": "Get activity",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Activities"],
                "summary": "Update activity",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Activities"],
                "summary": "Delete activity",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/actividades/{id}/evidencia": {
            "post": {
                "tags": ["Activities"],
                "summary": "Attach evidence file to an activity",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cartas": {
            "get": {
                "tags": ["Letters"],
                "summary": "List authorization letters",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "institucion", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Letters"],
                "summary": "Create authorization letter",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLetterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cartas/descarga": {
            "get": {
                "tags": ["Letters"],
                "summary": "Download a letter PDF with a signed token",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        },
        "/cartas/{id}": {
            "get": {
                "tags": ["Letters"],
                "summary": "Get authorization letter",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Letters"],
                "summary": "Delete authorization letter",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/cartas/{id}/pdf": {
            "get": {
                "tags": ["Letters"],
                "summary": "Render a letter as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/cartas/{id}/descarga": {
            "post": {
                "tags": ["Letters"],
                "summary": "Issue a signed download token for a letter PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cartas/{id}/enviar": {
            "patch": {
                "tags": ["Letters"],
                "summary": "Mark a letter as sent",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalogos/estudiantes": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "Student select catalog",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalogos/centros": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "Center select catalog",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalogos/colaboradores": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "Collaborator select catalog",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalogos/tutores": {
            "get": {
                "tags": ["Catalogs"],
                "summary": "Tutor select catalog",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "CreatePracticeRequest": {
            "type": "object",
            "properties": {
                "student_rut": {"type": "string"},
                "center_id": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "type": {"type": "string"},
                "status": {"type": "string", "enum": ["EN_CURSO", "APROBADO", "REPROBADO"]},
                "collaborator_ids": {"type": "array", "items": {"type": "string"}},
                "tutors": {"type": "array", "items": {"$ref": "#/definitions/PracticeTutorInput"}}
            },
            "required": ["student_rut", "center_id", "start_date", "collaborator_ids", "tutors"]
        },
        "PracticeTutorInput": {
            "type": "object",
            "properties": {
                "tutor_id": {"type": "string"},
                "role": {"type": "string", "enum": ["Supervisor", "Tallerista"]}
            },
            "required": ["tutor_id"]
        },
        "UpdatePracticeStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["EN_CURSO", "APROBADO", "REPROBADO"]}
            },
            "required": ["status"]
        },
        "CreateSurveyRequest": {
            "type": "object",
            "properties": {
                "tipo": {"type": "string", "enum": ["ESTUDIANTIL", "COLABORADORES_JEFES"]},
                "data": {"type": "object"}
            },
            "required": ["tipo", "data"]
        },
        "UpdateOpenAnswersRequest": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "question_id": {"type": "string"},
                            "open_answer": {"type": "string"}
                        }
                    }
                }
            },
            "required": ["answers"]
        },
        "StudentRequest": {
            "type": "object",
            "properties": {
                "rut": {"type": "string"},
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "fono": {"type": "string"}
            },
            "required": ["rut", "nombre"]
        },
        "CenterRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "tipo": {"type": "string", "enum": ["COLEGIO", "LICEO", "ESCUELA", "JARDIN", "NO_CONVENCIONAL"]},
                "region": {"type": "string"},
                "comuna": {"type": "string"},
                "direccion": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"},
                "convenio": {"type": "string"},
                "url_rrss": {"type": "string"},
                "fecha_inicio_asociacion": {"type": "string"}
            },
            "required": ["nombre"]
        },
        "PersonRequest": {
            "type": "object",
            "properties": {
                "rut": {"type": "string"},
                "nombre": {"type": "string"},
                "correo": {"type": "string"},
                "fono": {"type": "string"}
            },
            "required": ["rut", "nombre"]
        },
        "ActivityRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "place": {"type": "string"},
                "schedule": {"type": "string"},
                "students": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            },
            "required": ["title", "place", "schedule", "students", "date"]
        },
        "CreateLetterRequest": {
            "type": "object",
            "properties": {
                "ref_title": {"type": "string"},
                "city": {"type": "string"},
                "letter_date": {"type": "string", "format": "date-time"},
                "addressee_name": {"type": "string"},
                "addressee_role": {"type": "string"},
                "institution": {"type": "string"},
                "institution_addr": {"type": "string"},
                "practice_type": {"type": "string"},
                "period_start": {"type": "string", "format": "date-time"},
                "period_end": {"type": "string", "format": "date-time"},
                "degree": {"type": "string"},
                "comments": {"type": "string"},
                "tutor_name": {"type": "string"},
                "tutor_phone": {"type": "string"},
                "students": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {"type": "string"},
                            "rut": {"type": "string"}
                        }
                    }
                }
            },
            "required": ["ref_title", "city", "letter_date", "addressee_name", "institution", "practice_type", "period_start", "period_end", "students"]
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
