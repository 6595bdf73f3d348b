// Package probe verifies that a registered stdio server actually
// starts and speaks MCP, by initializing a session and listing tools.
package probe

import (
	"context"
	"fmt"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcpsync/mcpsync/internal/registry"
)

// Report summarizes a successful probe.
type Report struct {
	ServerName    string
	ServerVersion string
	Tools         []string
}

// Server spawns the definition's command over stdio, initializes the
// MCP session and lists its tools.
func Server(ctx context.Context, def registry.ServerDefinition) (*Report, error) {
	if def.Command == "" {
		return nil, fmt.Errorf("server has no command configured")
	}

	env := make([]string, 0, len(def.Env))
	for k, v := range def.Env {
		env = append(env, k+"="+v)
	}

	c, err := mcpclient.NewStdioMCPClient(def.Command, env, def.Args...)
	if err != nil {
		return nil, fmt.Errorf("starting server: %w", err)
	}
	defer c.Close()

	initResult, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2025-11-25",
			ClientInfo: mcp.Implementation{
				Name:    "mcpsync",
				Version: "0.1.0",
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initializing: %w", err)
	}

	report := &Report{
		ServerName:    initResult.ServerInfo.Name,
		ServerVersion: initResult.ServerInfo.Version,
	}

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		// Some servers expose no tools endpoint; initialization
		// succeeding is still a pass.
		return report, nil
	}
	for _, t := range tools.Tools {
		report.Tools = append(report.Tools, t.Name)
	}
	return report, nil
}
