// Package swaggerkit serves the console OpenAPI document and Swagger UI
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	perr "dataproc/internal/platform/errors"

	docs "dataproc/internal/services/api/docs"
)

// SpecMutator adjusts the parsed document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can serve a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator, applied in registration order on every request
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// remoteTags are the operations that call the processing service and can answer 502
var remoteTags = map[string]bool{
	"Session":       true,
	"Submissions":   true,
	"OperationCode": true,
}

// defaultResponse is an error answer added to operations that do not document one
type defaultResponse struct {
	status string
	// onlyRemote limits the response to operations tagged in remoteTags
	onlyRemote bool
	example    map[string]any
}

var defaults = []defaultResponse{
	{status: "400", example: errExample(perr.ErrorCodeValidation, "email must be a valid email address", "email")},
	{status: "500", example: errExample(perr.ErrorCodeUnknown, "internal server error", "")},
	{status: "502", onlyRemote: true, example: errExample(perr.ErrorCodeUpstream, "Processing failed", "")},
}

func errExample(code perr.ErrorCode, msg, field string) map[string]any {
	status := perr.HTTPStatusCode(code)
	ex := map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(code),
		"error":       msg,
		"request_id":  "host/abc-000001",
	}
	if field != "" {
		ex["field"] = field
	}
	return ex
}

// serveDocJSON serves the document with servers, the error schema and default
// error responses filled in. titleSuffix is appended to info.title when set.
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if titleSuffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + titleSuffix
				}
			}
		}
		ensureErrorResponseDefinition(spec)
		addDefaultResponses(spec)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3, which the bundled UI renders,
// and points servers at the API root when none is set
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope schema if missing.
// Its fields mirror the runtime wire.
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponses walks every operation and adds each default it lacks
func addDefaultResponses(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			remote := callsRemote(op)
			for _, d := range defaults {
				if d.onlyRemote && !remote {
					continue
				}
				if _, exists := responses[d.status]; exists {
					continue
				}
				responses[d.status] = map[string]any{
					"description": http.StatusText(d.example["status_code"].(int)),
					"content": map[string]any{
						"application/json": map[string]any{
							"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
							"example": d.example,
						},
					},
				}
			}
		}
	}
}

func callsRemote(op map[string]any) bool {
	tags, _ := op["tags"].([]any)
	for _, t := range tags {
		if s, ok := t.(string); ok && remoteTags[s] {
			return true
		}
	}
	return false
}

// child returns m[key] as a map, creating it when absent or mistyped
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
