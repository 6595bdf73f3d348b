// Package importer pulls servers found in client config files into the
// central registry, one interactive decision per candidate.
package importer

import (
	"log/slog"
	"sort"

	"github.com/mcpsync/mcpsync/internal/clientfile"
	"github.com/mcpsync/mcpsync/internal/clients"
	"github.com/mcpsync/mcpsync/internal/registry"
)

// Decision is the answer for one import candidate.
type Decision int

const (
	// Accept pulls the candidate into the central registry.
	Accept Decision = iota
	// Reject skips this one candidate and moves on.
	Reject
	// AbortRemaining ends the whole import run, keeping what was
	// accepted so far.
	AbortRemaining
)

// Candidate is a server present in a client file but absent from the
// central registry.
type Candidate struct {
	Client string
	Name   string
	Entry  clientfile.Entry
}

// DecisionFunc answers for one candidate. Production wiring prompts on
// stdin; tests script the sequence.
type DecisionFunc func(Candidate) (Decision, error)

// Run scans every enabled client in stable order and offers each
// unknown server to decide. It mutates reg in memory and returns the
// imported names in order; the caller persists. A client whose file
// fails to parse is reported and skipped, not fatal for the run.
func Run(reg *registry.Registry, cr *clients.Registry, decide DecisionFunc) ([]string, error) {
	var imported []string

	for _, desc := range cr.ListEnabled() {
		file, err := clientfile.Open(desc)
		if err != nil {
			slog.Warn("skipping unreadable client config", "client", desc.Name, "error", err)
			continue
		}

		servers := file.Servers()
		names := make([]string, 0, len(servers))
		for name := range servers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			// First client wins; names accepted earlier in this
			// run are not re-offered.
			if reg.Has(name) {
				continue
			}

			decision, err := decide(Candidate{Client: desc.Name, Name: name, Entry: servers[name]})
			if err != nil {
				return imported, err
			}

			switch decision {
			case AbortRemaining:
				return imported, nil
			case Reject:
				continue
			}

			def := servers[name].Canonical()
			def.Clients = []string{desc.Name}
			if err := reg.Add(name, def); err != nil {
				slog.Warn("cannot import server", "server", name, "client", desc.Name, "error", err)
				continue
			}
			imported = append(imported, name)
		}
	}
	return imported, nil
}
