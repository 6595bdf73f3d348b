package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync [server...]",
	Short: "Push registry definitions to their assigned clients",
	Long: `Pushes each selected server (all by default) into the config files
of the clients it is assigned to. Entries the clients manage on their
own are never touched; sync only inserts or overwrites its own.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}
	cr, err := app.loadClients()
	if err != nil {
		return err
	}

	if len(reg.Servers) == 0 {
		fmt.Fprintln(app.Stdout, "No servers to sync")
		return nil
	}

	results, err := syncer.New(reg, cr, app.LockDir).Sync(args)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(app.Stdout, "No clients assigned; nothing to do")
		return nil
	}

	failures := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failures++
			fmt.Fprintf(app.Stderr, "%s: failed: %v\n", res.Client, res.Err)
		case res.Skipped:
			fmt.Fprintf(app.Stdout, "%s: skipped (%s)\n", res.Client, res.Reason)
		default:
			fmt.Fprintf(app.Stdout, "%s: synced %d server(s) to %s\n", res.Client, res.Synced, res.Path)
		}
	}

	if failures > 0 {
		return fmt.Errorf("sync finished with %d failed client(s)", failures)
	}
	return nil
}
