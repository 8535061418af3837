package problem

import (
	"encoding/json"
	"net/http"
)

// ContentType is the media type of RFC 7807 responses.
const ContentType = "application/problem+json"

// Problem types for RFC 7807 Problem Details responses.
const (
	TypeValidation = "https://staffline.dev/problems/validation-error"
	TypeNotFound   = "https://staffline.dev/problems/not-found"
	TypeConflict   = "https://staffline.dev/problems/conflict"
	TypeInternal   = "https://staffline.dev/problems/internal-error"
)

// Details represents an RFC 7807 Problem Details response. Errors carries
// per-field messages for validation failures.
type Details struct {
	Type     string              `json:"type,omitempty"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// New builds a problem; field messages are copied.
func New(status int, title, detail, problemType string, fields map[string][]string) Details {
	problem := Details{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}

	if len(fields) > 0 {
		copied := make(map[string][]string, len(fields))
		for field, messages := range fields {
			copied[field] = append([]string(nil), messages...)
		}
		problem.Errors = copied
	}

	return problem
}

// Write writes p as an application/problem+json response.
func Write(w http.ResponseWriter, p Details) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// BadRequest writes a 400 problem response.
func BadRequest(w http.ResponseWriter, detail string, fields map[string][]string) {
	Write(w, New(http.StatusBadRequest, "Validation failed", detail, TypeValidation, fields))
}

// NotFound writes a 404 problem response.
func NotFound(w http.ResponseWriter, detail string) {
	Write(w, New(http.StatusNotFound, "Resource not found", detail, TypeNotFound, nil))
}

// InternalError writes a 500 problem response.
func InternalError(w http.ResponseWriter, detail string) {
	Write(w, New(http.StatusInternalServerError, "Internal server error", detail, TypeInternal, nil))
}
