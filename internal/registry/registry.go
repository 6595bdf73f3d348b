// Package registry is the canonical store of MCP server definitions,
// each tagged with the clients it should be synced to.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mcpsync/mcpsync/internal/cfgfile"
)

var timeNow = time.Now

type document struct {
	Servers map[string]ServerDefinition `json:"servers"`
}

// Registry holds the central server definitions, backed by one JSON file.
type Registry struct {
	path    string
	Servers map[string]ServerDefinition
}

// Load reads the registry at path. A missing file yields an empty
// registry; malformed content is a *cfgfile.ParseError.
func Load(path string) (*Registry, error) {
	reg := &Registry{path: path, Servers: make(map[string]ServerDefinition)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &cfgfile.ParseError{Path: path, Err: err}
	}
	if doc.Servers != nil {
		reg.Servers = doc.Servers
	}
	return reg, nil
}

// Save writes the registry atomically.
func (r *Registry) Save() error {
	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Servers: r.Servers}); err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	return cfgfile.WriteAtomic(r.path, payload.Bytes())
}

// Path returns the backing file path.
func (r *Registry) Path() string { return r.path }

// Get returns the definition for name.
func (r *Registry) Get(name string) (ServerDefinition, error) {
	def, ok := r.Servers[name]
	if !ok {
		return ServerDefinition{}, &NotFoundError{Name: name}
	}
	return def, nil
}

// Has reports whether name exists in the registry.
func (r *Registry) Has(name string) bool {
	_, ok := r.Servers[name]
	return ok
}

// Add inserts a new definition with creation timestamps. The name must
// not already exist and the definition must pass shape validation.
func (r *Registry) Add(name string, def ServerDefinition) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must be non-empty"}
	}
	if r.Has(name) {
		return &DuplicateServerError{Name: name}
	}
	if err := Validate(def); err != nil {
		return err
	}

	now := timeNow().Format(time.RFC3339)
	def.CreatedAt = now
	def.UpdatedAt = now
	r.Servers[name] = def
	return nil
}

// Edit applies mutate to the named definition, validates the result and
// bumps updated_at. created_at is preserved.
func (r *Registry) Edit(name string, mutate func(*ServerDefinition) error) error {
	def, ok := r.Servers[name]
	if !ok {
		return &NotFoundError{Name: name}
	}

	updated := def.Clone()
	if err := mutate(&updated); err != nil {
		return err
	}
	if err := Validate(updated); err != nil {
		return err
	}

	updated.CreatedAt = def.CreatedAt
	updated.UpdatedAt = timeNow().Format(time.RFC3339)
	r.Servers[name] = updated
	return nil
}

// Remove deletes the named definition.
func (r *Registry) Remove(name string) error {
	if !r.Has(name) {
		return &NotFoundError{Name: name}
	}
	delete(r.Servers, name)
	return nil
}

// NamedServer pairs a registry key with its definition.
type NamedServer struct {
	Name       string
	Definition ServerDefinition
}

// List returns all definitions sorted by name.
func (r *Registry) List() []NamedServer {
	out := make([]NamedServer, 0, len(r.Servers))
	for name, def := range r.Servers {
		out = append(out, NamedServer{Name: name, Definition: def})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
