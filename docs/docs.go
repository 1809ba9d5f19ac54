// Package docs holds the Swagger document served at /swagger/. It mirrors the
// handler annotations in internal/api; regenerate with
// swag init -g cmd/server/main.go after changing them.
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
		"/api/exams/bank/{bankID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Exams"
				],
				"summary": "Exam paper for a bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum number of questions",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "boolean",
						"description": "Randomise question order",
						"name": "shuffle",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.PaperResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/exams/grade": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Exams"
				],
				"summary": "Grade an exam",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"description": "Questions and answers",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.GradeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.GradeResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/exams/wrong": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Exams"
				],
				"summary": "Exam paper from wrong questions",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "integer",
						"description": "Maximum number of questions",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "boolean",
						"description": "Randomise question order",
						"name": "shuffle",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.PaperResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "Create a question bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"description": "Bank to create",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.CreateBankRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/api.BankResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks/export/{bankID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "Export a bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.ExportData"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks/public": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "List public banks",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/api.BankResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks/user/{userID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "List a user's banks",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Creator ID",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/api.BankResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks/{bankID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "Get a question bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.BankResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"description": "Omitted fields keep their current values. Owner only.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "Update a question bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.UpdateBankRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.BankResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Banks"
				],
				"summary": "Delete a question bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/question-banks/{bankID}/questions/batch": {
			"post": {
				"description": "Accepts the document produced by the export endpoint.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Banks"
				],
				"summary": "Batch import into a bank",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					},
					{
						"description": "Questions",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.ImportQuestionsRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/api.ImportQuestionsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/questions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "Create a question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"description": "Question to create",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.CreateQuestionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/api.QuestionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "bank not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/questions/bank/{bankID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "List a bank's questions",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Bank ID",
						"name": "bankID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/api.QuestionResponse"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/questions/import": {
			"post": {
				"description": "All questions are validated before any is written. The bank's question count grows by the batch size.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "Import questions",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"description": "Bank and questions",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.ImportQuestionsRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/api.ImportQuestionsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/questions/{questionID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "Get a question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.QuestionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"description": "Empty fields keep their current values. Changing the type requires a matching answer.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "Update a question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionID",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.UpdateQuestionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.QuestionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Questions"
				],
				"summary": "Delete a question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/questions/{questionID}/answer": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Questions"
				],
				"summary": "Answer a question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question ID",
						"name": "questionID",
						"in": "path",
						"required": true
					},
					{
						"description": "Submitted answer",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.AnswerRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.VerdictResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/users": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Users"
				],
				"summary": "List users",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/api.UserResponse"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/users/login": {
			"post": {
				"description": "Returns the user with the given name. A first login creates the user and a private wrong-answer bank.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Users"
				],
				"summary": "Log in by name",
				"parameters": [
					{
						"description": "User name",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.LoginResponse"
						}
					},
					"201": {
						"description": "user created",
						"schema": {
							"$ref": "#/definitions/api.LoginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/wrong-questions": {
			"post": {
				"description": "One record per user and question; recording again overwrites the answer and timestamp.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"WrongQuestions"
				],
				"summary": "Record a wrong answer",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"description": "Question and answer",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.RecordWrongAnswerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/api.WrongQuestionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "question not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/wrong-questions/stats/{userID}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"WrongQuestions"
				],
				"summary": "Wrong-answer statistics",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/api.StatsResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/wrong-questions/user/{userID}": {
			"get": {
				"description": "Records whose question was deleted are returned with a null question.",
				"produces": [
					"application/json"
				],
				"tags": [
					"WrongQuestions"
				],
				"summary": "List wrong questions",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "User ID",
						"name": "userID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/api.WrongQuestionResponse"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/wrong-questions/{id}": {
			"delete": {
				"tags": [
					"WrongQuestions"
				],
				"summary": "Delete a wrong question",
				"parameters": [
					{
						"type": "string",
						"description": "Caller ID",
						"name": "user-id",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Wrong question ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"api.AnswerRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string",
					"example": "B"
				}
			}
		},
		"api.BankRefResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"name": {
					"type": "string",
					"example": "Go concurrency"
				}
			}
		},
		"api.BankResponse": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"creator_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f0"
				},
				"creator_name": {
					"type": "string",
					"example": "alice"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"is_public": {
					"type": "boolean",
					"example": true
				},
				"name": {
					"type": "string",
					"example": "Go concurrency"
				},
				"question_count": {
					"type": "integer",
					"example": 12
				}
			}
		},
		"api.CreateBankRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string",
					"example": "Channels, goroutines and sync"
				},
				"is_public": {
					"type": "boolean",
					"example": true
				},
				"name": {
					"type": "string",
					"example": "Go concurrency"
				}
			}
		},
		"api.CreateQuestionRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string",
					"example": "A"
				},
				"bank_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"content": {
					"type": "string",
					"example": "Which channel never blocks the sender?"
				},
				"explanation": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OptionPayload"
					}
				},
				"type": {
					"type": "string",
					"enum": [
						"single",
						"multiple",
						"tf"
					],
					"example": "single"
				}
			}
		},
		"api.ExamQuestion": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f7"
				},
				"options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OptionPayload"
					}
				},
				"type": {
					"type": "string",
					"example": "multiple"
				}
			}
		},
		"api.ExportBank": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"is_public": {
					"type": "boolean"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"api.ExportData": {
			"type": "object",
			"properties": {
				"bank": {
					"$ref": "#/definitions/api.ExportBank"
				},
				"exported_at": {
					"type": "string",
					"example": "2024-03-01T09:00:00Z"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.QuestionPayload"
					}
				},
				"version": {
					"type": "string",
					"example": "1.0"
				}
			}
		},
		"api.GradeRequest": {
			"type": "object",
			"properties": {
				"answers": {
					"type": "object"
				},
				"question_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"api.GradeResponse": {
			"type": "object",
			"properties": {
				"accuracy": {
					"type": "integer",
					"example": 70
				},
				"correct": {
					"type": "integer",
					"example": 7
				},
				"incorrect": {
					"type": "integer",
					"example": 2
				},
				"outcomes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OutcomeResponse"
					}
				},
				"total": {
					"type": "integer",
					"example": 10
				},
				"unanswered": {
					"type": "integer",
					"example": 1
				}
			}
		},
		"api.ImportQuestionsRequest": {
			"type": "object",
			"properties": {
				"bank_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.QuestionPayload"
					}
				}
			}
		},
		"api.ImportQuestionsResponse": {
			"type": "object",
			"properties": {
				"imported": {
					"type": "integer",
					"example": 3
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.QuestionResponse"
					}
				}
			}
		},
		"api.LoginRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "alice"
				}
			}
		},
		"api.LoginResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "boolean",
					"example": true
				},
				"user": {
					"$ref": "#/definitions/api.UserResponse"
				}
			}
		},
		"api.OptionPayload": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string",
					"example": "A buffered channel"
				},
				"label": {
					"type": "string",
					"example": "A"
				}
			}
		},
		"api.OutcomeResponse": {
			"type": "object",
			"properties": {
				"correct_answer": {
					"type": "string"
				},
				"question_id": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"enum": [
						"correct",
						"incorrect",
						"unanswered"
					],
					"example": "incorrect"
				},
				"submitted": {
					"type": "string"
				}
			}
		},
		"api.PaperResponse": {
			"type": "object",
			"properties": {
				"bank_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.ExamQuestion"
					}
				}
			}
		},
		"api.QuestionPayload": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string",
					"example": "A"
				},
				"content": {
					"type": "string",
					"example": "Which channel never blocks the sender?"
				},
				"explanation": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OptionPayload"
					}
				},
				"type": {
					"type": "string",
					"enum": [
						"single",
						"multiple",
						"tf"
					],
					"example": "single"
				}
			}
		},
		"api.QuestionResponse": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string",
					"example": "A"
				},
				"bank_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"content": {
					"type": "string",
					"example": "Which channel never blocks the sender?"
				},
				"explanation": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f7"
				},
				"options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OptionPayload"
					}
				},
				"type": {
					"type": "string",
					"example": "single"
				}
			}
		},
		"api.RecordWrongAnswerRequest": {
			"type": "object",
			"properties": {
				"question_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f7"
				},
				"wrong_answer": {
					"type": "string",
					"example": "C"
				}
			}
		},
		"api.StatsResponse": {
			"type": "object",
			"properties": {
				"banks": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.BankRefResponse"
					}
				},
				"total": {
					"type": "integer",
					"example": 4
				},
				"type_breakdown": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				}
			}
		},
		"api.UpdateBankRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"is_public": {
					"type": "boolean",
					"example": false
				},
				"name": {
					"type": "string",
					"example": "Go concurrency"
				}
			}
		},
		"api.UpdateQuestionRequest": {
			"type": "object",
			"properties": {
				"answer": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"explanation": {
					"type": "string"
				},
				"options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/api.OptionPayload"
					}
				},
				"type": {
					"type": "string",
					"example": "multiple"
				}
			}
		},
		"api.UserResponse": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f6"
				},
				"name": {
					"type": "string",
					"example": "alice"
				},
				"role": {
					"type": "string",
					"example": "student"
				}
			}
		},
		"api.VerdictResponse": {
			"type": "object",
			"properties": {
				"correct": {
					"type": "boolean",
					"example": false
				},
				"correct_answer": {
					"type": "string",
					"example": "B"
				},
				"explanation": {
					"type": "string"
				},
				"wrong_question": {
					"$ref": "#/definitions/api.WrongQuestionResponse"
				}
			}
		},
		"api.WrongQuestionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f8"
				},
				"question": {
					"$ref": "#/definitions/api.QuestionResponse"
				},
				"question_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f7"
				},
				"timestamp": {
					"type": "string"
				},
				"user_id": {
					"type": "string",
					"example": "65f1c2a4e4b0a1b2c3d4e5f0"
				},
				"wrong_answer": {
					"type": "string",
					"example": "C"
				}
			}
		}
	},
	"securityDefinitions": {
		"UserID": {
			"type": "apiKey",
			"name": "user-id",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ExamPrep API",
	Description:      "Question banks, practice exams and a personal wrong-question log.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
