package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/registry"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a server definition in your editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}
	name := args[0]

	def, err := reg.Get(name)
	if err != nil {
		return err
	}

	current, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding current definition: %w", err)
	}

	updated, err := definitionFromEditor(append(current, '\n'))
	if err != nil {
		return err
	}

	if err := reg.Edit(name, func(d *registry.ServerDefinition) error {
		*d = updated
		return nil
	}); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Updated server %q in central registry\n", name)
	return nil
}
