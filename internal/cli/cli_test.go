package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcpsync/mcpsync/internal/registry"
)

// newTestApp points the package-level app at throwaway state files and
// captured streams.
func newTestApp(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	app = &App{
		RegistryPath: filepath.Join(dir, "registry.json"),
		ClientsPath:  filepath.Join(dir, "clients.json"),
		LockDir:      filepath.Join(dir, "locks"),
		Home:         t.TempDir(),
		Stdin:        strings.NewReader(""),
		Stdout:       stdout,
		Stderr:       stderr,
	}
	t.Cleanup(func() { app = nil })
	return stdout, stderr
}

func setAddFlags(t *testing.T, command string, args, env, clientNames []string) {
	t.Helper()
	addFlags.command = command
	addFlags.args = args
	addFlags.env = env
	addFlags.serverType = "stdio"
	addFlags.clients = clientNames
	t.Cleanup(func() {
		addFlags.command = ""
		addFlags.args = nil
		addFlags.env = nil
		addFlags.serverType = "stdio"
		addFlags.clients = nil
	})
}

func registerTestClient(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("seeding %s config: %v", name, err)
		}
	}
	clientRegisterKey = "mcpServers"
	if err := runClientRegister(nil, []string{name, path}); err != nil {
		t.Fatalf("registering %s: %v", name, err)
	}
	return path
}

func TestAddViaFlagsThenList(t *testing.T) {
	stdout, _ := newTestApp(t)
	setAddFlags(t, "npx", []string{"-y", "server-filesystem"}, []string{"API_KEY=secret"}, []string{"cursor"})

	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}
	if !strings.Contains(stdout.String(), `Added server "filesystem"`) {
		t.Fatalf("stdout = %q", stdout.String())
	}

	stdout.Reset()
	if err := runList(nil, nil); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "filesystem") || !strings.Contains(stdout.String(), "cursor") {
		t.Fatalf("list output = %q", stdout.String())
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	newTestApp(t)
	setAddFlags(t, "npx", nil, nil, nil)

	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("first runAdd() error = %v", err)
	}
	if err := runAdd(nil, []string{"filesystem"}); err == nil {
		t.Fatal("second runAdd() expected an error for duplicate name")
	}
}

func TestAddRejectsMalformedEnvFlag(t *testing.T) {
	newTestApp(t)
	setAddFlags(t, "npx", nil, []string{"NOVALUE"}, nil)

	if err := runAdd(nil, []string{"filesystem"}); err == nil {
		t.Fatal("runAdd() expected an error for --env without '='")
	}
}

func TestShowUnknownServer(t *testing.T) {
	newTestApp(t)

	err := runShow(nil, []string{"ghost"})
	var nf *registry.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("runShow() error = %v, want *registry.NotFoundError", err)
	}
}

func TestShowPrintsDefinition(t *testing.T) {
	stdout, _ := newTestApp(t)
	setAddFlags(t, "uvx", []string{"slack-mcp"}, []string{"TOKEN=t"}, []string{"claude"})
	if err := runAdd(nil, []string{"slack"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}
	stdout.Reset()

	if err := runShow(nil, []string{"slack"}); err != nil {
		t.Fatalf("runShow() error = %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Server: slack", "Command: uvx", "TOKEN=t", "claude"} {
		if !strings.Contains(out, want) {
			t.Fatalf("show output %q missing %q", out, want)
		}
	}
}

func TestRemoveServer(t *testing.T) {
	newTestApp(t)
	setAddFlags(t, "npx", nil, nil, nil)
	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	if err := runRemove(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}

	reg, err := app.loadRegistry()
	if err != nil {
		t.Fatalf("loadRegistry() error = %v", err)
	}
	if reg.Has("filesystem") {
		t.Fatal("server still present after remove")
	}
}

func TestClientRegisterListRemove(t *testing.T) {
	stdout, _ := newTestApp(t)
	registerTestClient(t, "windsurf", "")

	stdout.Reset()
	if err := runClientList(nil, nil); err != nil {
		t.Fatalf("runClientList() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "windsurf") || !strings.Contains(stdout.String(), "enabled") {
		t.Fatalf("client list output = %q", stdout.String())
	}

	if err := runClientRemove(nil, []string{"windsurf"}); err != nil {
		t.Fatalf("runClientRemove() error = %v", err)
	}

	cr, err := app.loadClients()
	if err != nil {
		t.Fatalf("loadClients() error = %v", err)
	}
	if cr.Has("windsurf") {
		t.Fatal("client still present after remove")
	}
}

func TestClientDisablePersists(t *testing.T) {
	newTestApp(t)
	registerTestClient(t, "windsurf", "")

	if err := setClientEnabled("windsurf", false); err != nil {
		t.Fatalf("setClientEnabled() error = %v", err)
	}

	cr, err := app.loadClients()
	if err != nil {
		t.Fatalf("loadClients() error = %v", err)
	}
	desc, err := cr.Resolve("windsurf")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if desc.Enabled {
		t.Fatal("disable did not persist")
	}
}

func TestSyncEndToEnd(t *testing.T) {
	stdout, _ := newTestApp(t)
	path := registerTestClient(t, "windsurf", `{"mcpServers": {}}`)
	setAddFlags(t, "npx", []string{"-y"}, nil, []string{"windsurf"})
	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}
	stdout.Reset()

	if err := runSync(nil, nil); err != nil {
		t.Fatalf("runSync() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "windsurf: synced 1 server(s)") {
		t.Fatalf("sync output = %q", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading client file: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing client file: %v", err)
	}
	section := doc["mcpServers"].(map[string]any)
	if _, ok := section["filesystem"]; !ok {
		t.Fatalf("client file = %s, missing filesystem", data)
	}
}

func TestSyncWithNoServers(t *testing.T) {
	stdout, _ := newTestApp(t)

	if err := runSync(nil, nil); err != nil {
		t.Fatalf("runSync() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "No servers to sync") {
		t.Fatalf("sync output = %q", stdout.String())
	}
}

func TestSyncReportsFailedClients(t *testing.T) {
	_, stderr := newTestApp(t)
	registerTestClient(t, "broken", `{not json`)
	setAddFlags(t, "npx", nil, nil, []string{"broken"})
	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	err := runSync(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "failed client(s)") {
		t.Fatalf("runSync() error = %v, want failure summary", err)
	}
	if !strings.Contains(stderr.String(), "broken: failed") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestImportAcceptsFromStdin(t *testing.T) {
	stdout, _ := newTestApp(t)
	registerTestClient(t, "windsurf", `{"mcpServers": {"slack": {"command": "uvx"}}}`)
	app.Stdin = strings.NewReader("y\n")
	stdout.Reset()

	if err := runImport(nil, nil); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Imported 1 server(s): slack") {
		t.Fatalf("import output = %q", stdout.String())
	}

	reg, err := app.loadRegistry()
	if err != nil {
		t.Fatalf("loadRegistry() error = %v", err)
	}
	def, err := reg.Get("slack")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(def.Clients) != 1 || def.Clients[0] != "windsurf" {
		t.Fatalf("Clients = %v, want [windsurf]", def.Clients)
	}
}

func TestImportSkipAllFromStdin(t *testing.T) {
	stdout, _ := newTestApp(t)
	registerTestClient(t, "windsurf", `{"mcpServers": {"one": {"command": "x"}, "two": {"command": "y"}}}`)
	app.Stdin = strings.NewReader("s\n")
	stdout.Reset()

	if err := runImport(nil, nil); err != nil {
		t.Fatalf("runImport() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "No new servers imported") {
		t.Fatalf("import output = %q", stdout.String())
	}
}

func TestExportCopiesRegistry(t *testing.T) {
	newTestApp(t)
	setAddFlags(t, "npx", nil, nil, nil)
	if err := runAdd(nil, []string{"filesystem"}); err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "backup.json")
	if err := runExport(nil, []string{dest}); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	want, err := os.ReadFile(app.RegistryPath)
	if err != nil {
		t.Fatalf("reading registry: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("export differs from registry file")
	}
}

func TestExportEmptyRegistry(t *testing.T) {
	newTestApp(t)

	dest := filepath.Join(t.TempDir(), "backup.json")
	if err := runExport(nil, []string{dest}); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	var doc map[string]any
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if _, ok := doc["servers"]; !ok {
		t.Fatalf("export = %s, missing servers key", data)
	}
}
