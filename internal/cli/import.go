package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Pull servers found in client configs into the registry",
	Long: `Scans every enabled client's config file for servers the central
registry does not know yet and asks, one by one, whether to import
them. An imported server starts out assigned to the client it came
from.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}
	cr, err := app.loadClients()
	if err != nil {
		return err
	}

	imported, err := importer.Run(reg, cr, promptDecision())
	if err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}

	if len(imported) == 0 {
		fmt.Fprintln(app.Stdout, "No new servers imported")
		return nil
	}
	fmt.Fprintf(app.Stdout, "Imported %d server(s): %s\n", len(imported), strings.Join(imported, ", "))
	fmt.Fprintln(app.Stdout, "Run 'mcpsync sync' to push to all clients")
	return nil
}

// promptDecision reads one answer per candidate from stdin.
func promptDecision() importer.DecisionFunc {
	reader := bufio.NewReader(app.Stdin)
	return func(c importer.Candidate) (importer.Decision, error) {
		fmt.Fprintf(app.Stdout, "Found server %q in %s\n", c.Name, c.Client)
		for {
			fmt.Fprint(app.Stdout, "Import? [y]es / [n]o / [s]kip all: ")
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				// EOF on stdin ends the run rather than looping.
				return importer.AbortRemaining, nil
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return importer.Accept, nil
			case "n", "no":
				return importer.Reject, nil
			case "s", "skip", "skip-all":
				fmt.Fprintln(app.Stdout, "Skipping all remaining servers")
				return importer.AbortRemaining, nil
			}
		}
	}
}
