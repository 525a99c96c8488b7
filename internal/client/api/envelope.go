package api

import json "github.com/goccy/go-json"

// Meta is the pagination block attached to list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Envelope is the uniform response wrapper every directory API endpoint
// uses: {success, data|message, meta?}.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// Result is what a successful call hands back to a resource controller:
// the server message (mutations) and pagination meta (lists). The data
// payload itself is decoded into the caller's out value.
type Result struct {
	Message string
	Meta    *Meta
}
