package registry

import "fmt"

// NotFoundError reports a server name missing from the central registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("server %q not found in central registry", e.Name)
}

// DuplicateServerError reports an attempt to add a server name that
// already exists.
type DuplicateServerError struct {
	Name string
}

func (e *DuplicateServerError) Error() string {
	return fmt.Sprintf("server %q already exists in central registry", e.Name)
}

// ValidationError rejects a definition whose shape is invalid. Field
// names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid server definition: %s: %s", e.Field, e.Reason)
}
