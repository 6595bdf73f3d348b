package clients

import (
	"os"
	"path/filepath"
)

// builtinOrder fixes the listing order for well-known clients.
var builtinOrder = []string{"cursor", "claude", "gemini", "opencode", "codex"}

// Builtins returns descriptors for the well-known clients, with config
// paths resolved against home. codex keeps its servers in TOML; the
// adapter picks the format from the file extension.
func Builtins(home string) []Descriptor {
	return []Descriptor{
		{Name: "cursor", Path: filepath.Join(home, ".cursor", "mcp.json"), Key: DefaultKey},
		{Name: "claude", Path: filepath.Join(home, ".claude", "config.json"), Key: DefaultKey},
		{Name: "gemini", Path: filepath.Join(home, ".gemini", "settings.json"), Key: DefaultKey},
		{Name: "opencode", Path: filepath.Join(home, ".config", "opencode", "opencode.json"), Key: "mcp"},
		{Name: "codex", Path: filepath.Join(home, ".codex", "config.toml"), Key: "mcp_servers"},
	}
}

var statFile = os.Stat

// Discover probes each built-in client's config path and upserts a
// descriptor for the ones that exist. Existing entries are left alone,
// so discovery never resurrects a client the user disabled.
func (r *Registry) Discover(home string) []string {
	var found []string
	for _, desc := range Builtins(home) {
		if r.Has(desc.Name) {
			continue
		}
		if _, err := statFile(desc.Path); err != nil {
			continue
		}
		desc.AutoDiscovered = true
		desc.Enabled = true
		r.clients[desc.Name] = desc
		found = append(found, desc.Name)
	}
	return found
}
