// Package clientfile reads and writes a client's own config file,
// touching only the nested key that holds server entries and keeping
// every sibling key intact.
package clientfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mcpsync/mcpsync/internal/cfgfile"
	"github.com/mcpsync/mcpsync/internal/clients"
)

// File is one client config file opened for read-modify-write.
type File struct {
	desc clients.Descriptor
	doc  map[string]any
}

// Open reads the client's config file. An absent file yields an empty
// document; malformed content is a *cfgfile.ParseError, never an empty
// document.
func Open(desc clients.Descriptor) (*File, error) {
	f := &File{desc: desc, doc: make(map[string]any)}

	data, err := os.ReadFile(desc.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("reading %s: %w", desc.Path, err)
	}

	if err := unmarshalDoc(desc.Path, data, &f.doc); err != nil {
		return nil, &cfgfile.ParseError{Path: desc.Path, Err: err}
	}
	return f, nil
}

// Path returns the client config file path.
func (f *File) Path() string { return f.desc.Path }

// Servers decodes the entries nested under the client's key.
func (f *File) Servers() map[string]Entry {
	section, ok := f.doc[f.desc.Key].(map[string]any)
	if !ok {
		return map[string]Entry{}
	}

	out := make(map[string]Entry, len(section))
	for name, raw := range section {
		out[name] = entryFromRaw(raw)
	}
	return out
}

// SetServer inserts or replaces one entry under the client's key.
// Entries it does not name are left untouched.
func (f *File) SetServer(name string, e Entry) {
	section, ok := f.doc[f.desc.Key].(map[string]any)
	if !ok {
		section = make(map[string]any)
		f.doc[f.desc.Key] = section
	}
	section[name] = e.raw()
}

// Save writes the whole document back atomically in the client's
// native format.
func (f *File) Save() error {
	data, err := marshalDoc(f.desc.Path, f.doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f.desc.Path, err)
	}
	return cfgfile.WriteAtomic(f.desc.Path, data)
}

// Format is chosen by extension, the same way codex configs are told
// apart from mcpServers JSON documents.
func unmarshalDoc(path string, data []byte, doc *map[string]any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, doc)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, doc)
	default:
		return json.Unmarshal(data, doc)
	}
}

func marshalDoc(path string, doc map[string]any) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".yaml", ".yml":
		return yaml.Marshal(doc)
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
