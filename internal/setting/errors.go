package setting

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup against a meta tree or data set that did
// not resolve. It carries the resource kind and key for precise reporting.
type NotFoundError struct {
	// ResourceType categorizes what was looked up ("setting", "setting value").
	ResourceType string

	// ResourceName is the key that failed to resolve.
	ResourceName string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// IsNotFound checks if an error is a NotFoundError using error unwrapping.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewSettingNotFoundError creates a NotFoundError for a meta-tree lookup.
func NewSettingNotFoundError(key string) *NotFoundError {
	return &NotFoundError{ResourceType: "setting", ResourceName: key}
}

// NewValueNotFoundError creates a NotFoundError for a data-set lookup.
func NewValueNotFoundError(key string) *NotFoundError {
	return &NotFoundError{ResourceType: "setting value", ResourceName: key}
}

// UnsupportedTypeError reports a setting type outside the closed taxonomy,
// or a meta node whose payload does not match its declared type. Either is
// a contract violation of the manifest, never a user input error.
type UnsupportedTypeError struct {
	// Key is the setting the violation was detected on, if known.
	Key string

	// Type is the declared type, when the token resolved but the payload
	// did not match it.
	Type Type

	// Token is the raw manifest token, when it failed to resolve at all.
	Token string
}

// Error implements the error interface for UnsupportedTypeError.
func (e *UnsupportedTypeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unsupported setting type token %q", e.Token)
	}
	if e.Key != "" {
		return fmt.Sprintf("setting %s: unsupported setting type %s", e.Key, e.Type.Token())
	}
	return fmt.Sprintf("unsupported setting type %s", e.Type.Token())
}

// IsUnsupportedType checks if an error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	var typeErr *UnsupportedTypeError
	return errors.As(err, &typeErr)
}
