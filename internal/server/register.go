package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/dispatch"
	"github.com/teemow/lark-mcp/internal/logging"
)

// RegisterOptions control how catalog tools are advertised.
type RegisterOptions struct {
	// Locale selects the description language.
	Locale catalog.Locale
	// NameCase selects how canonical snake_case names are written.
	NameCase catalog.NameCase
	// UserAccessToken, when set, is attached to every call instead of
	// consulting the credential store.
	UserAccessToken string
}

// RegisterCatalogTools registers each descriptor as an MCP tool. The
// handler funnels every call through the dispatcher, so MCP and CLI
// invocations share resolution, validation and normalization.
func RegisterCatalogTools(s *mcpserver.MCPServer, sc *ServerContext, tools []catalog.ToolDescriptor, opts RegisterOptions) error {
	for i := range tools {
		tool := tools[i] // capture per iteration for the closure
		mcpTool := mcp.NewToolWithRawSchema(
			catalog.ApplyCase(tool.Name, opts.NameCase),
			tool.Description.Get(opts.Locale),
			tool.Schema,
		)
		s.AddTool(mcpTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleToolCall(ctx, request, sc, tool.Name, opts)
		})
	}
	sc.logger.Info("registered catalog tools", "count", len(tools))
	return nil
}

func handleToolCall(ctx context.Context, request mcp.CallToolRequest, sc *ServerContext, toolName string, opts RegisterOptions) (*mcp.CallToolResult, error) {
	rawParams, err := json.Marshal(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError("failed to encode arguments: " + err.Error()), nil
	}

	result, err := sc.Dispatcher().CallTool(ctx, toolName, rawParams, dispatch.CallOptions{
		UserAccessToken: opts.UserAccessToken,
	})
	if err != nil {
		sc.logger.Debug("tool call failed", logging.Tool(toolName), logging.Err(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}
