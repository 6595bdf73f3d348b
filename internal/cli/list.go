package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List centrally managed servers",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}

	servers := reg.List()
	if len(servers) == 0 {
		fmt.Fprintln(app.Stdout, "No servers in central registry. Use 'mcpsync add <name>' to add one.")
		return nil
	}

	fmt.Fprintf(app.Stdout, "%-20s %-30s %s\n", "NAME", "COMMAND", "CLIENTS")
	for _, srv := range servers {
		cmdLine := srv.Definition.Command
		if len(srv.Definition.Args) > 0 {
			cmdLine += " " + strings.Join(srv.Definition.Args, " ")
		}
		if len(cmdLine) > 28 {
			cmdLine = cmdLine[:28]
		}
		fmt.Fprintf(app.Stdout, "%-20s %-30s %s\n", srv.Name, cmdLine, strings.Join(srv.Definition.Clients, ", "))
	}
	return nil
}
