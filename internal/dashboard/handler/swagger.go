package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>neuronest-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the dashboard resource endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "neuronest-api", "version": "v0.1.0" },
  "paths": {
    "/api/assignments": {
      "get": { "summary": "List assignments (incomplete first, then deadline asc)", "responses": { "200": { "description": "assignment list" } } },
      "post": { "summary": "Create an assignment", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"subject":{"type":"string"},"deadline":{"type":"string"},"priority":{"type":"string"},"estimatedHours":{"type":"number"}},"required":["title","deadline"]}}}}, "responses": { "201": { "description": "created assignment" }, "400": { "description": "missing title/deadline" } } }
    },
    "/api/assignments/{id}": {
      "patch": { "summary": "Partially update an assignment", "responses": { "200": { "description": "updated assignment" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete an assignment", "responses": { "200": { "description": "ack" }, "404": { "description": "unknown id" } } }
    },
    "/api/mood": {
      "get": { "summary": "List mood logs (date asc)", "responses": { "200": { "description": "mood log list" } } },
      "post": { "summary": "Upsert the mood log for a date", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"date":{"type":"string"},"mood":{"type":"string"},"moodScore":{"type":"integer"},"energy":{"type":"integer"},"note":{"type":"string"},"stress":{"type":"integer"}},"required":["date","mood","moodScore","energy"]}}}}, "responses": { "201": { "description": "created log" }, "400": { "description": "missing required field" } } }
    },
    "/api/habits": {
      "get": { "summary": "List habits with last-7-day log window", "responses": { "200": { "description": "habit list" } } }
    },
    "/api/habits/{id}/log": {
      "patch": { "summary": "Upsert one day's value for a habit", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"date":{"type":"string"},"value":{"type":"number"}},"required":["date","value"]}}}}, "responses": { "200": { "description": "ack" }, "400": { "description": "missing field" }, "404": { "description": "unknown habit" } } }
    },
    "/api/chat": {
      "get": { "summary": "List chat messages (createdAt asc)", "responses": { "200": { "description": "message list" } } },
      "post": { "summary": "Append a chat message", "responses": { "201": { "description": "created message" }, "400": { "description": "missing role/content" } } },
      "delete": { "summary": "Clear history back to the welcome message", "responses": { "200": { "description": "ack" } } }
    },
    "/api/student": {
      "get": { "summary": "Get the student profile", "responses": { "200": { "description": "profile" } } },
      "patch": { "summary": "Patch profile stats", "responses": { "200": { "description": "updated profile" } } }
    },
    "/api/weekly-plan": {
      "get": { "summary": "Get the saved weekly plan (null when unsaved)", "responses": { "200": { "description": "plan or null" } } },
      "post": { "summary": "Save/overwrite the weekly plan", "responses": { "200": { "description": "ack" }, "400": { "description": "missing plan" } } }
    },
    "/api/health": { "get": { "summary": "Health check", "responses": { "200": { "description": "status and time" } } } }
  }
}`
