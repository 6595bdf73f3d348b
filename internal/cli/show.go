package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show server details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}

	name := args[0]
	def, err := reg.Get(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Stdout, "Server: %s\n", name)
	fmt.Fprintf(app.Stdout, "  Type:    %s\n", def.Type)
	fmt.Fprintf(app.Stdout, "  Command: %s\n", def.Command)
	fmt.Fprintf(app.Stdout, "  Args:    %s\n", strings.Join(def.Args, " "))
	if len(def.Env) > 0 {
		fmt.Fprintln(app.Stdout, "  Env:")
		for _, kv := range sortedEnv(def.Env) {
			fmt.Fprintf(app.Stdout, "    %s\n", kv)
		}
	}
	fmt.Fprintf(app.Stdout, "  Clients: %s\n", strings.Join(def.Clients, ", "))
	if def.CreatedAt != "" {
		fmt.Fprintf(app.Stdout, "  Created: %s\n", def.CreatedAt)
	}
	if def.UpdatedAt != "" {
		fmt.Fprintf(app.Stdout, "  Updated: %s\n", def.UpdatedAt)
	}
	return nil
}

func sortedEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
