package clientfile

import (
	"slices"

	"github.com/mcpsync/mcpsync/internal/registry"
)

// Entry is one server object in a client's native shape. Known fields
// are typed; anything else is captured verbatim in Extra so a
// read-modify-write never drops client-owned data.
type Entry struct {
	Type    string
	Command string
	Args    []string
	Env     map[string]string
	URL     string
	Headers map[string]string
	Enabled *bool
	Extra   map[string]any
}

// entryFromRaw decodes a generic server object. Known keys with an
// unexpected shape stay in Extra untouched.
func entryFromRaw(raw any) Entry {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Entry{}
	}

	var e Entry
	for key, val := range obj {
		switch key {
		case "type":
			if s, ok := val.(string); ok {
				e.Type = s
				continue
			}
		case "command":
			if s, ok := val.(string); ok {
				e.Command = s
				continue
			}
		case "args":
			if args, ok := toStringSlice(val); ok {
				e.Args = args
				continue
			}
		case "env":
			if env, ok := toStringMap(val); ok {
				e.Env = env
				continue
			}
		case "url":
			if s, ok := val.(string); ok {
				e.URL = s
				continue
			}
		case "headers":
			if headers, ok := toStringMap(val); ok {
				e.Headers = headers
				continue
			}
		case "enabled":
			if b, ok := val.(bool); ok {
				e.Enabled = &b
				continue
			}
		}
		if e.Extra == nil {
			e.Extra = make(map[string]any)
		}
		e.Extra[key] = val
	}
	return e
}

// raw renders the entry back into a generic object.
func (e Entry) raw() map[string]any {
	obj := make(map[string]any, len(e.Extra)+7)
	for k, v := range e.Extra {
		obj[k] = v
	}
	if e.Type != "" {
		obj["type"] = e.Type
	}
	if e.Command != "" {
		obj["command"] = e.Command
	}
	if e.Args != nil {
		obj["args"] = e.Args
	}
	if e.Env != nil {
		obj["env"] = e.Env
	}
	if e.URL != "" {
		obj["url"] = e.URL
	}
	if e.Headers != nil {
		obj["headers"] = e.Headers
	}
	if e.Enabled != nil {
		obj["enabled"] = *e.Enabled
	}
	return obj
}

// Canonical converts a client-shaped entry to the central registry
// representation. Transport defaults to stdio when the client omits it;
// client-only fields move into Extra.
func (e Entry) Canonical() registry.ServerDefinition {
	def := registry.ServerDefinition{
		Type:    e.Type,
		Command: e.Command,
		Args:    slices.Clone(e.Args),
	}
	if def.Type == "" {
		def.Type = "stdio"
	}
	if e.Env != nil {
		def.Env = make(map[string]string, len(e.Env))
		for k, v := range e.Env {
			def.Env[k] = v
		}
	}

	extra := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		extra[k] = v
	}
	if e.URL != "" {
		extra["url"] = e.URL
	}
	if len(e.Headers) > 0 {
		extra["headers"] = e.Headers
	}
	if e.Enabled != nil {
		extra["enabled"] = *e.Enabled
	}
	if len(extra) > 0 {
		def.Extra = extra
	}
	return def
}

// FromDefinition converts a central definition into the client shape,
// dropping the registry-only fields (clients, timestamps). The enabled
// flag defaults to true so clients that honor it pick the server up.
func FromDefinition(def registry.ServerDefinition) Entry {
	e := Entry{
		Type:    def.Type,
		Command: def.Command,
		Args:    slices.Clone(def.Args),
	}
	if def.Env != nil {
		e.Env = make(map[string]string, len(def.Env))
		for k, v := range def.Env {
			e.Env[k] = v
		}
	}

	for key, val := range def.Extra {
		switch key {
		case "url":
			if s, ok := val.(string); ok {
				e.URL = s
				continue
			}
		case "headers":
			if headers, ok := toStringMap(val); ok {
				e.Headers = headers
				continue
			}
		case "enabled":
			if b, ok := val.(bool); ok {
				e.Enabled = &b
				continue
			}
		}
		if e.Extra == nil {
			e.Extra = make(map[string]any)
		}
		e.Extra[key] = val
	}

	if e.Enabled == nil {
		enabled := true
		e.Enabled = &enabled
	}
	return e
}

func toStringSlice(val any) ([]string, bool) {
	switch v := val.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func toStringMap(val any) (map[string]string, bool) {
	switch v := val.(type) {
	case map[string]string:
		return v, true
	case map[string]any:
		out := make(map[string]string, len(v))
		for key, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[key] = s
		}
		return out, true
	}
	return nil, false
}
