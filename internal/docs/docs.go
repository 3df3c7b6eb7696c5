// Package docs serves the API documentation endpoints: a machine-readable
// OpenAPI 3 document and a small HTML viewer around it.
package docs

import (
	"encoding/json"
	"fmt"
)

// Info describes the running API in the OpenAPI document.
type Info struct {
	Title       string
	Version     string
	Description string
	ServerURL   string
}

// Document builds the OpenAPI 3 document once, at startup. The document is
// assembled from plain maps and serialized to JSON; route handlers serve the
// cached bytes.
func Document(info Info) ([]byte, error) {
	messageSchema := map[string]any{
		"type":     "object",
		"required": []string{"message"},
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
		},
	}
	ideaSchema := map[string]any{
		"type":     "object",
		"required": []string{"id", "owner_id", "title"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"owner_id":    map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"tags":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"image_urls":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"created_at":  map[string]any{"type": "string", "format": "date-time"},
			"updated_at":  map[string]any{"type": "string", "format": "date-time"},
		},
	}
	userSchema := map[string]any{
		"type":     "object",
		"required": []string{"id", "email", "name"},
		"properties": map[string]any{
			"id":         map[string]any{"type": "string"},
			"email":      map[string]any{"type": "string", "format": "email"},
			"name":       map[string]any{"type": "string"},
			"provider":   map[string]any{"type": "string"},
			"avatar_url": map[string]any{"type": "string"},
			"created_at": map[string]any{"type": "string", "format": "date-time"},
		},
	}
	credentialsSchema := map[string]any{
		"type":     "object",
		"required": []string{"email", "password"},
		"properties": map[string]any{
			"email":    map[string]any{"type": "string", "format": "email"},
			"password": map[string]any{"type": "string", "format": "password"},
			"name":     map[string]any{"type": "string"},
		},
	}

	messageRef := map[string]any{
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/Message"},
			},
		},
	}
	errorResponse := func(description string) map[string]any {
		resp := map[string]any{"description": description}
		for k, v := range messageRef {
			resp[k] = v
		}
		return resp
	}
	jsonResponse := func(description string, schema map[string]any) map[string]any {
		return map[string]any{
			"description": description,
			"content": map[string]any{
				"application/json": map[string]any{"schema": schema},
			},
		}
	}
	ideaRef := map[string]any{"$ref": "#/components/schemas/Idea"}
	userRef := map[string]any{"$ref": "#/components/schemas/User"}

	uploadRequest := map[string]any{
		"required": true,
		"content": map[string]any{
			"multipart/form-data": map[string]any{
				"schema": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"image": map[string]any{"type": "string", "format": "binary"},
					},
				},
			},
		},
	}

	doc := map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       info.Title,
			"version":     info.Version,
			"description": info.Description,
		},
		"servers": []map[string]any{
			{"url": info.ServerURL},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"Message":     messageSchema,
				"Idea":        ideaSchema,
				"User":        userSchema,
				"Credentials": credentialsSchema,
			},
			"securitySchemes": map[string]any{
				"cookieAuth": map[string]any{"type": "apiKey", "in": "cookie", "name": "session"},
				"bearerAuth": map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
			},
		},
		"paths": map[string]any{
			"/api/auth/register": map[string]any{
				"post": map[string]any{
					"summary": "Register a local account",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/Credentials"},
							},
						},
					},
					"responses": map[string]any{
						"201": jsonResponse("Account created", userRef),
						"400": errorResponse("Invalid credentials payload"),
						"409": errorResponse("Email already registered"),
					},
				},
			},
			"/api/auth/login": map[string]any{
				"post": map[string]any{
					"summary": "Log in with email and password",
					"responses": map[string]any{
						"200": jsonResponse("Session established", userRef),
						"401": errorResponse("Wrong email or password"),
					},
				},
			},
			"/api/auth/logout": map[string]any{
				"post": map[string]any{
					"summary": "Terminate the current session",
					"responses": map[string]any{
						"200": jsonResponse("Session terminated", map[string]any{"$ref": "#/components/schemas/Message"}),
					},
				},
			},
			"/api/auth/{provider}": map[string]any{
				"get": map[string]any{
					"summary": "Start a third-party login flow",
					"parameters": []map[string]any{
						{"name": "provider", "in": "path", "required": true, "schema": map[string]any{"type": "string", "enum": []string{"google", "facebook"}}},
					},
					"responses": map[string]any{
						"302": map[string]any{"description": "Redirect to the provider authorization page"},
						"404": errorResponse("Unknown provider"),
					},
				},
			},
			"/api/ideas": map[string]any{
				"get": map[string]any{
					"summary": "List ideas, newest first",
					"responses": map[string]any{
						"200": jsonResponse("All ideas", map[string]any{"type": "array", "items": ideaRef}),
					},
				},
				"post": map[string]any{
					"summary":  "Create an idea",
					"security": []map[string]any{{"cookieAuth": []string{}}, {"bearerAuth": []string{}}},
					"responses": map[string]any{
						"201": jsonResponse("Created idea", ideaRef),
						"401": errorResponse("Not authenticated"),
					},
				},
			},
			"/api/ideas/{id}": map[string]any{
				"get": map[string]any{
					"summary": "Fetch one idea",
					"responses": map[string]any{
						"200": jsonResponse("The idea", ideaRef),
						"404": errorResponse("Idea not found"),
					},
				},
				"put": map[string]any{
					"summary":  "Update an owned idea",
					"security": []map[string]any{{"cookieAuth": []string{}}, {"bearerAuth": []string{}}},
					"responses": map[string]any{
						"200": jsonResponse("Updated idea", ideaRef),
						"403": errorResponse("Idea belongs to a different user"),
						"404": errorResponse("Idea not found"),
					},
				},
				"delete": map[string]any{
					"summary":  "Delete an owned idea",
					"security": []map[string]any{{"cookieAuth": []string{}}, {"bearerAuth": []string{}}},
					"responses": map[string]any{
						"200": jsonResponse("Deleted", map[string]any{"$ref": "#/components/schemas/Message"}),
						"403": errorResponse("Idea belongs to a different user"),
						"404": errorResponse("Idea not found"),
					},
				},
			},
			"/api/users/me": map[string]any{
				"get": map[string]any{
					"summary":  "Fetch the authenticated account",
					"security": []map[string]any{{"cookieAuth": []string{}}, {"bearerAuth": []string{}}},
					"responses": map[string]any{
						"200": jsonResponse("The account", userRef),
						"401": errorResponse("Not authenticated"),
					},
				},
			},
			"/uploadImage": map[string]any{
				"post": map[string]any{
					"summary":     "Upload one image to the image host",
					"requestBody": uploadRequest,
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Hosted image URL",
							"content": map[string]any{
								"text/plain": map[string]any{"schema": map[string]any{"type": "string"}},
							},
						},
						"502": errorResponse("Image host rejected the upload"),
					},
				},
			},
			"/uploadMultipleImages": map[string]any{
				"post": map[string]any{
					"summary":     "Upload several images to the image host",
					"requestBody": uploadRequest,
					"responses": map[string]any{
						"200": jsonResponse("Hosted image URLs in input order", map[string]any{"type": "array", "items": map[string]any{"type": "string"}}),
						"502": errorResponse("Image host rejected an upload"),
					},
				},
			},
		},
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return payload, nil
}
