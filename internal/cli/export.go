package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write a copy of the central registry to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if _, err := app.loadRegistry(); err != nil {
		return err
	}

	data, err := os.ReadFile(app.RegistryPath)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte("{\n  \"servers\": {}\n}\n")
		} else {
			return fmt.Errorf("reading registry: %w", err)
		}
	}

	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(app.Stdout, "Registry exported to %s\n", args[0])
	return nil
}
