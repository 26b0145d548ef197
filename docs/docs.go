// Package docs registers the Swagger document served under /swagger.
// Keep it in step with the handler annotations.
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
        "/api/admin/assessments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "저장된 평가 기록을 최신순으로 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Admin (Protected)"],
                "summary": "평가 기록 목록 조회",
                "parameters": [
                    {"type": "integer", "description": "최대 개수 (기본 50, 최대 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AssessmentsResponse"}},
                    "400": {"description": "잘못된 limit", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "인증 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "DB 조회 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/admin/assessments/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin (Protected)"],
                "summary": "평가 기록 단건 조회",
                "parameters": [
                    {"type": "string", "description": "평가 ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AssessmentRecord"}},
                    "401": {"description": "인증 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "기록 없음", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "DB 조회 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/admin/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin (Protected)"],
                "summary": "위험 등급별 평가 건수",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.StatsResponse"}},
                    "401": {"description": "인증 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "DB 조회 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/assess": {
            "post": {
                "description": "생활 습관과 정신 건강 설문을 받아 위험 점수, 위험 등급, 권장 사항을 반환합니다.\n`+"`"+`age`+"`"+`만 필수이며 나머지 필드는 기본값이 적용됩니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assessment"],
                "summary": "건강 위험도 평가 (Assess)",
                "parameters": [
                    {"description": "설문 응답", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AssessmentInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AssessResponse"}},
                    "400": {"description": "필수 필드 누락 또는 잘못된 나이", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "요청 과다", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "평가 실패", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "서비스 생존 여부를 확인합니다.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "헬스 체크 (Health)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/ws/assess": {
            "get": {
                "description": "폼 작성 중 입력값을 보내면 즉시 점수와 등급을 돌려줍니다. 결과는 저장되지 않습니다.",
                "tags": ["WebSocket (Preview)"],
                "summary": "실시간 위험도 미리보기 WebSocket",
                "responses": {
                    "101": {"description": "101 Switching Protocols", "schema": {"type": "string"}},
                    "403": {"description": "허용되지 않은 Origin", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AssessResponse": {
            "type": "object",
            "properties": {
                "factors": {"type": "array", "items": {"$ref": "#/definitions/models.Factor"}},
                "mentalHealthScore": {"type": "number", "example": 3},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "riskCategory": {"type": "string", "example": "Low Risk"},
                "score": {"type": "number", "example": 10},
                "success": {"type": "boolean", "example": true},
                "tableVersion": {"type": "string", "example": "v1"}
            }
        },
        "handler.AssessmentsResponse": {
            "type": "object",
            "properties": {
                "assessments": {"type": "array", "items": {"$ref": "#/definitions/models.AssessmentRecord"}}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Missing required fields"},
                "message": {"type": "string", "example": "Required fields: age"},
                "missingFields": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "Healthy"},
                "timestamp": {"type": "string", "example": "2026-01-01T00:00:00Z"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "handler.StatsResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryCount"}},
                "total": {"type": "integer"}
            }
        },
        "models.AssessmentInput": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "alcohol": {"type": "string"},
                "anxiety": {"type": "integer"},
                "conditions": {"type": "array", "items": {"type": "string"}},
                "exercise": {"type": "string"},
                "gender": {"type": "string"},
                "mentalHealthIssues": {"type": "array", "items": {"type": "string"}},
                "mentalSupport": {"type": "string"},
                "mentalWellbeing": {"type": "integer"},
                "relaxationFrequency": {"type": "string"},
                "screenTime": {"type": "string"},
                "sleepQuality": {"type": "integer"},
                "smoke": {"type": "string"},
                "socialConnection": {"type": "integer"},
                "stress": {"type": "integer"}
            }
        },
        "models.AssessmentRecord": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "input": {"$ref": "#/definitions/models.AssessmentInput"},
                "riskCategory": {"type": "string"},
                "score": {"type": "number"},
                "tableVersion": {"type": "string"}
            }
        },
        "models.CategoryCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "riskCategory": {"type": "string"}
            }
        },
        "models.Factor": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "smoking"},
                "points": {"type": "number", "example": 3}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wellsure Health Risk API",
	Description:      "Self-reported lifestyle and mental-health risk assessment.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
