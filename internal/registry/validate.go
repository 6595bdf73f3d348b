package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validate checks definition shape invariants: type and command are
// non-empty strings, args is a string sequence, env a flat string map,
// clients a string set.
func Validate(def ServerDefinition) error {
	if strings.TrimSpace(def.Type) == "" {
		return &ValidationError{Field: "type", Reason: "must be a non-empty string"}
	}
	if strings.TrimSpace(def.Command) == "" {
		return &ValidationError{Field: "command", Reason: "must be a non-empty string"}
	}
	return nil
}

// ParseDefinition decodes user-supplied JSON (editor output, import
// payloads) into a ServerDefinition, rejecting wrong field shapes with
// a *ValidationError naming the field.
func ParseDefinition(data []byte) (ServerDefinition, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return ServerDefinition{}, fmt.Errorf("invalid JSON: %w", err)
	}

	def := ServerDefinition{
		Type: "stdio",
		Args: []string{},
		Env:  map[string]string{},
	}
	for key, raw := range obj {
		switch key {
		case "type":
			if err := json.Unmarshal(raw, &def.Type); err != nil {
				return ServerDefinition{}, &ValidationError{Field: "type", Reason: "must be a string"}
			}
		case "command":
			if err := json.Unmarshal(raw, &def.Command); err != nil {
				return ServerDefinition{}, &ValidationError{Field: "command", Reason: "must be a string"}
			}
		case "args":
			if err := json.Unmarshal(raw, &def.Args); err != nil {
				return ServerDefinition{}, &ValidationError{Field: "args", Reason: "must be a list of strings"}
			}
		case "env":
			if err := json.Unmarshal(raw, &def.Env); err != nil {
				return ServerDefinition{}, &ValidationError{Field: "env", Reason: "must be a string-to-string map"}
			}
		case "clients":
			if err := json.Unmarshal(raw, &def.Clients); err != nil {
				return ServerDefinition{}, &ValidationError{Field: "clients", Reason: "must be a list of client names"}
			}
		case "created_at", "updated_at":
			// Timestamps are owned by the registry, not the editor.
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return ServerDefinition{}, &ValidationError{Field: key, Reason: "invalid value"}
			}
			if def.Extra == nil {
				def.Extra = make(map[string]any)
			}
			def.Extra[key] = v
		}
	}

	if err := Validate(def); err != nil {
		return ServerDefinition{}, err
	}
	return def, nil
}

// Template is the skeleton offered when adding a server interactively.
func Template() ServerDefinition {
	return ServerDefinition{
		Type:    "stdio",
		Command: "npx",
		Args:    []string{},
		Env:     map[string]string{},
		Clients: []string{},
	}
}

// TemplateJSON renders the add template as indented JSON.
func TemplateJSON() []byte {
	data, _ := json.MarshalIndent(Template(), "", "  ")
	return append(data, '\n')
}
