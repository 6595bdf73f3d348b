package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/clients"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage the clients servers are synced to",
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known clients",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

var clientRegisterKey string

var clientRegisterCmd = &cobra.Command{
	Use:   "register <name> <path>",
	Short: "Register a custom client",
	Long: `Registers a client by the path of its config file. The --key flag
names the JSON key holding server entries (use 'mcp' for
OpenCode-style configs). TOML and YAML files are recognized by
extension.`,
	Args: cobra.ExactArgs(2),
	RunE: runClientRegister,
}

var clientRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a custom client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientRemove,
}

var clientEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a client for sync and import",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setClientEnabled(args[0], true)
	},
}

var clientDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a client without removing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setClientEnabled(args[0], false)
	},
}

func init() {
	clientRegisterCmd.Flags().StringVar(&clientRegisterKey, "key", clients.DefaultKey, "Config key holding server entries")
	clientCmd.AddCommand(clientListCmd, clientRegisterCmd, clientRemoveCmd, clientEnableCmd, clientDisableCmd)
	rootCmd.AddCommand(clientCmd)
}

func runClientList(cmd *cobra.Command, args []string) error {
	cr, err := app.loadClients()
	if err != nil {
		return err
	}

	all := cr.List()
	if len(all) == 0 {
		fmt.Fprintln(app.Stdout, "No clients registered. Use 'mcpsync client register' to add one.")
		return nil
	}

	fmt.Fprintf(app.Stdout, "%-15s %-10s %-6s %s\n", "NAME", "STATUS", "AUTO", "CONFIG PATH")
	for _, desc := range all {
		status := "enabled"
		if !desc.Enabled {
			status = "disabled"
		}
		auto := "no"
		if desc.AutoDiscovered {
			auto = "yes"
		}
		fmt.Fprintf(app.Stdout, "%-15s %-10s %-6s %s\n", desc.Name, status, auto, desc.Path)
	}
	return nil
}

func runClientRegister(cmd *cobra.Command, args []string) error {
	cr, err := app.loadClients()
	if err != nil {
		return err
	}
	name, path := args[0], args[1]

	if err := cr.Register(name, path, clientRegisterKey); err != nil {
		return err
	}
	if err := cr.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Registered client %q -> %s (key: %s)\n", name, path, clientRegisterKey)
	return nil
}

func runClientRemove(cmd *cobra.Command, args []string) error {
	cr, err := app.loadClients()
	if err != nil {
		return err
	}
	name := args[0]

	if err := cr.Remove(name); err != nil {
		return err
	}
	if err := cr.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Removed client %q\n", name)
	return nil
}

func setClientEnabled(name string, enabled bool) error {
	cr, err := app.loadClients()
	if err != nil {
		return err
	}
	if err := cr.SetEnabled(name, enabled); err != nil {
		return err
	}
	if err := cr.Save(); err != nil {
		return err
	}
	status := "enabled"
	if !enabled {
		status = "disabled"
	}
	fmt.Fprintf(app.Stdout, "Client %q %s\n", name, status)
	return nil
}
