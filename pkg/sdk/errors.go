package sdk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned when a successful response carries no payload.
var ErrNoData = errors.New("grindchain: empty response payload")

// APIError is returned when the server reports a non-success result, either
// as an HTTP error status or a success=false envelope.
type APIError struct {
	Status  int
	Path    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("grindchain: %s: %s (status %d)", e.Path, e.Message, e.Status)
}

// SchemaError is returned when a response payload fails schema validation.
// The engine treats it like any other reconciliation failure.
type SchemaError struct {
	Path   string
	Causes []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("grindchain: %s: malformed payload: %s", e.Path, strings.Join(e.Causes, "; "))
}
