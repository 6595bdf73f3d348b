// Package syncer pushes central registry definitions out to each
// assigned client's config file. Sync only inserts or overwrites the
// entries it manages; servers a client's owner configured on their own
// are never removed.
package syncer

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcpsync/mcpsync/internal/clientfile"
	"github.com/mcpsync/mcpsync/internal/clients"
	"github.com/mcpsync/mcpsync/internal/flock"
	"github.com/mcpsync/mcpsync/internal/registry"
)

// Result is the per-client outcome of one sync run. A client is either
// skipped (with a reason), failed (Err set), or synced.
type Result struct {
	Client  string
	Path    string
	Synced  int
	Skipped bool
	Reason  string
	Err     error
}

// Engine runs sync over a central registry and a client registry.
type Engine struct {
	registry *registry.Registry
	clients  *clients.Registry
	lockDir  string
}

// New builds an engine. lockDir is where per-file sync locks live;
// empty disables locking.
func New(reg *registry.Registry, cr *clients.Registry, lockDir string) *Engine {
	return &Engine{registry: reg, clients: cr, lockDir: lockDir}
}

// Sync pushes the named servers (all when names is empty) to their
// assigned clients. Per-client failures land in the result slice;
// remaining clients still run. An unknown server name aborts up front.
func (e *Engine) Sync(names []string) ([]Result, error) {
	selected, err := e.selectServers(names)
	if err != nil {
		return nil, err
	}

	// Invert the assignment: client name -> servers bound to it.
	targets := make(map[string][]registry.NamedServer)
	for _, srv := range selected {
		for _, client := range srv.Definition.Clients {
			targets[client] = append(targets[client], srv)
		}
	}

	var results []Result
	for _, name := range orderedTargets(targets, e.clients) {
		results = append(results, e.syncClient(name, targets[name]))
	}
	return results, nil
}

func (e *Engine) selectServers(names []string) ([]registry.NamedServer, error) {
	if len(names) == 0 {
		return e.registry.List(), nil
	}

	out := make([]registry.NamedServer, 0, len(names))
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, name := range sorted {
		def, err := e.registry.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, registry.NamedServer{Name: name, Definition: def})
	}
	return out, nil
}

// orderedTargets lists target client names deterministically: client
// registry order for known clients, then unknown names sorted.
func orderedTargets(targets map[string][]registry.NamedServer, cr *clients.Registry) []string {
	seen := make(map[string]bool, len(targets))
	var out []string
	for _, desc := range cr.List() {
		if _, ok := targets[desc.Name]; ok {
			out = append(out, desc.Name)
			seen[desc.Name] = true
		}
	}

	var unknown []string
	for name := range targets {
		if !seen[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return append(out, unknown...)
}

func (e *Engine) syncClient(name string, servers []registry.NamedServer) Result {
	desc, err := e.clients.Resolve(name)
	if err != nil {
		slog.Warn("skipping unknown client", "client", name)
		return Result{Client: name, Skipped: true, Reason: "not registered"}
	}
	if !desc.Enabled {
		slog.Warn("skipping disabled client", "client", name, "path", desc.Path)
		return Result{Client: name, Path: desc.Path, Skipped: true, Reason: "disabled"}
	}

	if e.lockDir != "" {
		lock, err := flock.Acquire(flock.PathFor(e.lockDir, desc.Path))
		if err != nil {
			return Result{Client: name, Path: desc.Path, Err: fmt.Errorf("locking client file: %w", err)}
		}
		defer lock.Release()
	}

	file, err := clientfile.Open(desc)
	if err != nil {
		slog.Warn("client sync failed", "client", name, "error", err)
		return Result{Client: name, Path: desc.Path, Err: err}
	}

	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	for _, srv := range servers {
		file.SetServer(srv.Name, clientfile.FromDefinition(srv.Definition))
	}

	if err := file.Save(); err != nil {
		slog.Warn("client sync failed", "client", name, "error", err)
		return Result{Client: name, Path: desc.Path, Err: err}
	}
	return Result{Client: name, Path: desc.Path, Synced: len(servers)}
}
