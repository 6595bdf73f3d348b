// Package cli wires the mcpsync commands. Environment and home
// directory lookups happen once, in Execute; everything below receives
// resolved paths.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/clients"
	"github.com/mcpsync/mcpsync/internal/paths"
	"github.com/mcpsync/mcpsync/internal/registry"
)

// App carries the resolved file locations and standard streams.
type App struct {
	RegistryPath string
	ClientsPath  string
	LockDir      string
	Home         string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var app *App

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mcpsync",
	Short: "Manage MCP servers across every client from one registry",
	Long: `mcpsync keeps a central registry of MCP server definitions and
syncs them into the config files of the clients that should run them
(Cursor, Claude, Gemini CLI, OpenCode, Codex, or any custom tool).

Definitions live in one place; a single edit propagates everywhere
with 'mcpsync sync'. Existing client configs can be pulled in with
'mcpsync import'.`,
	Example: `  mcpsync add filesystem           # Add a server via your editor
  mcpsync sync                     # Push to all assigned clients
  mcpsync import                   # Pull servers found in client configs
  mcpsync client list              # Show known clients`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func initLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Execute resolves paths from the environment and runs the root command.
func Execute() error {
	app = &App{
		RegistryPath: paths.RegistryFile(),
		ClientsPath:  paths.ClientsFile(),
		LockDir:      paths.ConfigDir(),
		Home:         paths.HomeDir(),
		Stdin:        os.Stdin,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
	return rootCmd.Execute()
}

func (a *App) loadRegistry() (*registry.Registry, error) {
	return registry.Load(a.RegistryPath)
}

// loadClients loads the client registry and folds in newly discovered
// built-in clients, persisting only when discovery found something.
func (a *App) loadClients() (*clients.Registry, error) {
	reg, err := clients.Load(a.ClientsPath)
	if err != nil {
		return nil, err
	}
	if found := reg.Discover(a.Home); len(found) > 0 {
		slog.Debug("discovered clients", "clients", found)
		if err := reg.Save(); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
