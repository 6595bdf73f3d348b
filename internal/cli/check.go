package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpsync/mcpsync/internal/probe"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Verify a registered server starts and speaks MCP",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "Probe timeout")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg, err := app.loadRegistry()
	if err != nil {
		return err
	}
	name := args[0]

	def, err := reg.Get(name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	report, err := probe.Server(ctx, def)
	if err != nil {
		return fmt.Errorf("check %s: %w", name, err)
	}

	fmt.Fprintf(app.Stdout, "%s: ok (%s %s)\n", name, report.ServerName, report.ServerVersion)
	if len(report.Tools) > 0 {
		fmt.Fprintf(app.Stdout, "  %d tool(s): %s\n", len(report.Tools), strings.Join(report.Tools, ", "))
	}
	return nil
}
