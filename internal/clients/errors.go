package clients

import "fmt"

// NotFoundError reports an unknown client name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("client %q not found", e.Name)
}

// DuplicateClientError reports a registration under an existing name.
type DuplicateClientError struct {
	Name string
}

func (e *DuplicateClientError) Error() string {
	return fmt.Sprintf("client %q is already registered", e.Name)
}

// ProtectedClientError refuses removal of an auto-discovered built-in.
type ProtectedClientError struct {
	Name string
}

func (e *ProtectedClientError) Error() string {
	return fmt.Sprintf("client %q is auto-discovered and cannot be removed; disable it instead", e.Name)
}
