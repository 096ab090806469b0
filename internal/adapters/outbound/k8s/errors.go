package k8s

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundError represents a "not found" case that is not an error.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) IsNotFound() {}

// APIError wraps a failed API call, either an error status or a transport failure.
type APIError struct {
	Err error
}

func (e *APIError) Error() string {
	return e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) IsAPIError() {}

// ErrConvert is returned when an object cannot be converted between typed and unstructured form.
var ErrConvert = errors.New("convert object")

// wrapAPIError maps client-go errors onto the marker types understood by the logic layer.
func wrapAPIError(err error, kind, name string) error {
	if apierrors.IsNotFound(err) {
		return &NotFoundError{Kind: kind, Name: name}
	}

	// Transport failures (dial, TLS, deadline) carry no API status but are
	// still failed API calls.
	return &APIError{Err: err}
}
