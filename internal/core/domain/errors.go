package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNetwork wraps transport failures: the backend could not be reached.
	ErrNetwork = errors.New("backend unreachable")
	// ErrAuthExpired marks a stored token the backend no longer accepts.
	ErrAuthExpired = errors.New("authentication expired")
	ErrForbidden   = errors.New("access forbidden")
	ErrNotFound    = errors.New("not found")
	ErrNoToken     = errors.New("no access token")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// RequestFailedError is a non-2xx backend answer. Detail is the backend's own
// message when it sent one, otherwise a generic message for the operation.
type RequestFailedError struct {
	Operation string
	Status    int
	Detail    string
}

func (e *RequestFailedError) Error() string {
	return e.Detail
}

// Is lets 401/403/404 answers match the matching sentinels.
func (e *RequestFailedError) Is(target error) bool {
	switch target {
	case ErrForbidden:
		return e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	case ErrAuthExpired:
		return e.Status == 401
	}
	return false
}

// Location is the path of a rejected field. The backend mixes strings and
// list indices, so every element is kept in its printed form.
type Location []string

func (l *Location) UnmarshalJSON(b []byte) error {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Location, 0, len(raw))
	for _, v := range raw {
		out = append(out, fmt.Sprint(v))
	}
	*l = out
	return nil
}

// FieldError is one entry of a 422 detail list.
type FieldError struct {
	Loc  Location `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type,omitempty"`
}

func (f FieldError) String() string {
	if len(f.Loc) == 0 {
		return f.Msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(f.Loc, " -> "), f.Msg)
}

// ValidationError is a backend 422 with per-field complaints.
type ValidationError struct {
	Fields []FieldError
}

// Error flattens every field into one human-readable message.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid data"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
