package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field errors and builds a single
// InvalidArgument error, or nil when nothing was recorded
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// RequiredFieldIf adds a required field error when missing is true
func (vb *ValidationBuilder) RequiredFieldIf(field string, missing bool) *ValidationBuilder {
	if missing {
		vb.RequiredField(field)
	}
	return vb
}

// Positive records an error when value is not strictly positive
func (vb *ValidationBuilder) Positive(field string, value int64) *ValidationBuilder {
	if value <= 0 {
		vb.Fieldf(field, "must be positive, got %d", value)
	}
	return vb
}

// OneOf records an error when value is not in allowed
func (vb *ValidationBuilder) OneOf(field, value string, allowed ...string) *ValidationBuilder {
	for _, a := range allowed {
		if value == a {
			return vb
		}
	}
	return vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// Build returns nil when no errors were recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(vb.fields[name], ", "))
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}
