package registry

import (
	"encoding/json"
	"slices"
)

// ServerDefinition is the canonical record for one MCP server.
// Fields that only exist in a client's native shape (url, headers,
// enabled, anything unknown) travel through Extra so an imported
// definition syncs back out without losing data.
type ServerDefinition struct {
	Type      string
	Command   string
	Args      []string
	Env       map[string]string
	Clients   []string
	CreatedAt string
	UpdatedAt string
	Extra     map[string]any
}

// HasClient reports whether the definition is assigned to the named client.
func (d ServerDefinition) HasClient(name string) bool {
	return slices.Contains(d.Clients, name)
}

// AddClient assigns the definition to a client if not already assigned.
func (d *ServerDefinition) AddClient(name string) {
	if !d.HasClient(name) {
		d.Clients = append(d.Clients, name)
	}
}

// Clone returns a deep copy of the definition.
func (d ServerDefinition) Clone() ServerDefinition {
	out := d
	out.Args = slices.Clone(d.Args)
	out.Clients = slices.Clone(d.Clients)
	if d.Env != nil {
		out.Env = make(map[string]string, len(d.Env))
		for k, v := range d.Env {
			out.Env[k] = v
		}
	}
	if d.Extra != nil {
		out.Extra = make(map[string]any, len(d.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// MarshalJSON flattens Extra alongside the declared fields. Declared
// fields win on key collisions.
func (d ServerDefinition) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(d.Extra)+7)
	for k, v := range d.Extra {
		obj[k] = v
	}
	obj["type"] = d.Type
	obj["command"] = d.Command
	obj["args"] = emptyIfNilSlice(d.Args)
	obj["env"] = emptyIfNilMap(d.Env)
	obj["clients"] = emptyIfNilSlice(d.Clients)
	if d.CreatedAt != "" {
		obj["created_at"] = d.CreatedAt
	}
	if d.UpdatedAt != "" {
		obj["updated_at"] = d.UpdatedAt
	}
	return json.Marshal(obj)
}

// UnmarshalJSON splits declared fields out of the object and keeps the
// remainder verbatim in Extra.
func (d *ServerDefinition) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*d = ServerDefinition{}
	for key, raw := range obj {
		switch key {
		case "type":
			if err := json.Unmarshal(raw, &d.Type); err != nil {
				return err
			}
		case "command":
			if err := json.Unmarshal(raw, &d.Command); err != nil {
				return err
			}
		case "args":
			if err := json.Unmarshal(raw, &d.Args); err != nil {
				return err
			}
		case "env":
			if err := json.Unmarshal(raw, &d.Env); err != nil {
				return err
			}
		case "clients":
			if err := json.Unmarshal(raw, &d.Clients); err != nil {
				return err
			}
		case "created_at":
			if err := json.Unmarshal(raw, &d.CreatedAt); err != nil {
				return err
			}
		case "updated_at":
			if err := json.Unmarshal(raw, &d.UpdatedAt); err != nil {
				return err
			}
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[key] = v
		}
	}
	return nil
}

func emptyIfNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
