// Package clients tracks the MCP client tools (cursor, claude, ...)
// whose config files mcpsync reads and writes.
package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mcpsync/mcpsync/internal/cfgfile"
)

// Descriptor identifies one client and where its config lives.
type Descriptor struct {
	Name           string `json:"name"`
	Path           string `json:"path"`
	Key            string `json:"key"`
	AutoDiscovered bool   `json:"auto_discovered"`
	Enabled        bool   `json:"enabled"`
}

// DefaultKey is the nested-object key most clients use.
const DefaultKey = "mcpServers"

type document struct {
	Clients map[string]Descriptor `json:"clients"`
}

// Registry holds known clients, backed by one JSON file.
type Registry struct {
	path    string
	clients map[string]Descriptor
}

// Load reads the client registry at path. A missing file yields an
// empty registry; malformed content is a *cfgfile.ParseError.
func Load(path string) (*Registry, error) {
	reg := &Registry{path: path, clients: make(map[string]Descriptor)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("reading client registry: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &cfgfile.ParseError{Path: path, Err: err}
	}
	if doc.Clients != nil {
		reg.clients = doc.Clients
	}
	return reg, nil
}

// Save writes the client registry atomically.
func (r *Registry) Save() error {
	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Clients: r.clients}); err != nil {
		return fmt.Errorf("encoding client registry: %w", err)
	}
	return cfgfile.WriteAtomic(r.path, payload.Bytes())
}

// Resolve returns the descriptor for name.
func (r *Registry) Resolve(name string) (Descriptor, error) {
	desc, ok := r.clients[name]
	if !ok {
		return Descriptor{}, &NotFoundError{Name: name}
	}
	return desc, nil
}

// Has reports whether name is a known client.
func (r *Registry) Has(name string) bool {
	_, ok := r.clients[name]
	return ok
}

// Register adds a custom client. Key defaults to DefaultKey.
func (r *Registry) Register(name, path, key string) error {
	if r.Has(name) {
		return &DuplicateClientError{Name: name}
	}
	if key == "" {
		key = DefaultKey
	}
	r.clients[name] = Descriptor{
		Name:    name,
		Path:    path,
		Key:     key,
		Enabled: true,
	}
	return nil
}

// Remove deletes a custom client. Auto-discovered built-ins are
// protected; disable them instead.
func (r *Registry) Remove(name string) error {
	desc, ok := r.clients[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	if desc.AutoDiscovered {
		return &ProtectedClientError{Name: name}
	}
	delete(r.clients, name)
	return nil
}

// SetEnabled toggles a client's participation in sync and import.
// Idempotent: re-enabling an enabled client is not an error.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	desc, ok := r.clients[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	desc.Enabled = enabled
	r.clients[name] = desc
	return nil
}

// List returns every known client in deterministic order: built-ins in
// their canonical order first, then custom clients sorted by name.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.clients))
	seen := make(map[string]bool, len(r.clients))

	for _, name := range builtinOrder {
		if desc, ok := r.clients[name]; ok {
			out = append(out, desc)
			seen[name] = true
		}
	}

	custom := make([]Descriptor, 0, len(r.clients))
	for name, desc := range r.clients {
		if !seen[name] {
			custom = append(custom, desc)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].Name < custom[j].Name })
	return append(out, custom...)
}

// ListEnabled returns enabled clients in List order.
func (r *Registry) ListEnabled() []Descriptor {
	all := r.List()
	out := all[:0:0]
	for _, desc := range all {
		if desc.Enabled {
			out = append(out, desc)
		}
	}
	return out
}
