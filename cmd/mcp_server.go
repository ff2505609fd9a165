package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/keycycle/internal/driver"
	"github.com/mj1618/keycycle/internal/output"
	"github.com/mj1618/keycycle/internal/platform"
	"github.com/mj1618/keycycle/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all keycycle tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return newMCPServerWithProvider(provider), nil
}

func newMCPServerWithProvider(provider *platform.Provider) *mcpServer {
	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer(
		"keycycle",
		version.Version,
	)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List top-level windows. By default only Visual Studio Code windows are listed, first entry being the cycle target."),
			mcp.WithBoolean("all", mcp.Description("List every top-level window")),
			mcp.WithBoolean("visible", mcp.Description("Only list visible windows")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("run_cycle",
			mcp.WithDescription("Send one select-all, copy, select-all, delete, paste, save cycle to the Visual Studio Code window"),
		),
		s.handleRunCycle,
	)
}

func (s *mcpServer) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	all := boolParam(params, "all", false)
	visible := boolParam(params, "visible", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.provider.WindowFinder == nil {
		return mcp.NewToolResultError("window enumeration not available on this platform"), nil
	}

	result, err := listWindows(s.provider.WindowFinder, all, visible)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := output.YAMLString(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleRunCycle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	d, err := driver.NewFromProvider(s.provider, driver.Options{
		Out:    io.Discard,
		Logger: slog.Default(),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Debug("mcp run_cycle")
	result, cycleErr := executeCycle(ctx, d)
	text, err := output.YAMLString(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if cycleErr != nil {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// boolParam reads a boolean tool argument, falling back to def.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "1"
	default:
		return def
	}
}
