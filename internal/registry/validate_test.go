package registry

import (
	"errors"
	"testing"
)

func TestParseDefinitionValid(t *testing.T) {
	def, err := ParseDefinition([]byte(`{
		"type": "stdio",
		"command": "npx",
		"args": ["-y", "server-slack"],
		"env": {"SLACK_TOKEN": "xoxb"},
		"clients": ["cursor", "claude"]
	}`))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	if def.Command != "npx" || len(def.Args) != 2 || def.Env["SLACK_TOKEN"] != "xoxb" {
		t.Fatalf("parsed definition = %+v", def)
	}
	if len(def.Clients) != 2 {
		t.Fatalf("Clients = %v, want two entries", def.Clients)
	}
}

func TestParseDefinitionDefaultsType(t *testing.T) {
	def, err := ParseDefinition([]byte(`{"command": "npx"}`))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	if def.Type != "stdio" {
		t.Fatalf("Type = %q, want %q", def.Type, "stdio")
	}
}

func TestParseDefinitionFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"args not a list", `{"command": "npx", "args": "-y"}`, "args"},
		{"args not strings", `{"command": "npx", "args": [1, 2]}`, "args"},
		{"env not flat", `{"command": "npx", "env": {"A": {"nested": true}}}`, "env"},
		{"clients not strings", `{"command": "npx", "clients": [true]}`, "clients"},
		{"command not a string", `{"command": 42}`, "command"},
		{"missing command", `{"type": "stdio"}`, "command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.input))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestParseDefinitionKeepsUnknownFields(t *testing.T) {
	def, err := ParseDefinition([]byte(`{"command": "npx", "url": "https://x", "custom": 7}`))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	if def.Extra["url"] != "https://x" {
		t.Fatalf("Extra[url] = %v", def.Extra["url"])
	}
	if def.Extra["custom"] != float64(7) {
		t.Fatalf("Extra[custom] = %v", def.Extra["custom"])
	}
}

func TestParseDefinitionIgnoresTimestamps(t *testing.T) {
	def, err := ParseDefinition([]byte(`{"command": "npx", "created_at": "2020-01-01T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	if def.CreatedAt != "" {
		t.Fatalf("CreatedAt = %q, want empty (registry-owned)", def.CreatedAt)
	}
	if _, ok := def.Extra["created_at"]; ok {
		t.Fatal("created_at leaked into Extra")
	}
}
