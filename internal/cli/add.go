package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/editor"
	"github.com/mcpsync/mcpsync/internal/registry"
)

var addFlags struct {
	command    string
	args       []string
	env        []string
	serverType string
	clients    []string
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a server to the central registry",
	Long: `Adds a server definition under the given name.

With --command the definition is built from flags. Without it, your
editor opens on a JSON template to fill in.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFlags.command, "command", "", "Command to run the server")
	addCmd.Flags().StringArrayVar(&addFlags.args, "arg", nil, "Command argument (repeatable)")
	addCmd.Flags().StringArrayVar(&addFlags.env, "env", nil, "Environment variable KEY=VALUE (repeatable)")
	addCmd.Flags().StringVar(&addFlags.serverType, "type", "stdio", "Transport type")
	addCmd.Flags().StringSliceVar(&addFlags.clients, "client", nil, "Client to sync this server to (repeatable)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}
	name := args[0]

	if reg.Has(name) {
		return fmt.Errorf("server %q already exists; use 'mcpsync edit %s' to modify it", name, name)
	}

	var def registry.ServerDefinition
	if addFlags.command != "" {
		def, err = definitionFromFlags()
	} else {
		def, err = definitionFromEditor(registry.TemplateJSON())
	}
	if err != nil {
		return err
	}

	if err := reg.Add(name, def); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Added server %q to central registry\n", name)
	if len(def.Clients) > 0 {
		fmt.Fprintln(app.Stdout, "Run 'mcpsync sync' to push it to its clients")
	}
	return nil
}

func definitionFromFlags() (registry.ServerDefinition, error) {
	env := make(map[string]string, len(addFlags.env))
	for _, kv := range addFlags.env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return registry.ServerDefinition{}, fmt.Errorf("invalid --env %q, expected KEY=VALUE", kv)
		}
		env[key] = value
	}

	return registry.ServerDefinition{
		Type:    addFlags.serverType,
		Command: addFlags.command,
		Args:    append([]string{}, addFlags.args...),
		Env:     env,
		Clients: append([]string{}, addFlags.clients...),
	}, nil
}

func definitionFromEditor(initial []byte) (registry.ServerDefinition, error) {
	edited, err := editor.EditJSON(initial)
	if err != nil {
		return registry.ServerDefinition{}, err
	}
	return registry.ParseDefinition(edited)
}
