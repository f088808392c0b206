package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/config"
	"github.com/teemow/lark-mcp/internal/dispatch"
	"github.com/teemow/lark-mcp/internal/instrumentation"
	"github.com/teemow/lark-mcp/internal/lark"
	"github.com/teemow/lark-mcp/internal/logging"
	"github.com/teemow/lark-mcp/internal/server"
)

func newMCPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing the selected
catalog tools to AI assistants.

Supports multiple transport modes:
  - stdio: Standard input/output (default)
  - sse: Server-sent events over HTTP
  - streamable: Streamable HTTP transport

Options resolve from defaults, then the --config file, then LARK_*
environment variables, then the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.LoadServeOptions(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			return runMCP(opts)
		},
	}

	cmd.Flags().String("app-id", "", "Application ID. Can also use LARK_APP_ID env var.")
	cmd.Flags().String("app-secret", "", "Application secret. Can also use LARK_APP_SECRET env var.")
	cmd.Flags().String("domain", lark.FeishuDomain, "OpenAPI base URL. Can also use LARK_DOMAIN env var.")
	cmd.Flags().StringP("tools", "t", "", "Tool and preset names to expose (comma-separated). Empty means preset.default.")
	cmd.Flags().String("tool-name-case", "snake", "Tool name case: snake, camel, kebab or dot")
	cmd.Flags().StringP("language", "l", "en", "Tool description language: en or zh")
	cmd.Flags().String("token-mode", "auto", "Token mode: auto, user_access_token or tenant_access_token")
	cmd.Flags().String("user-access-token", "", "User access token attached to every call instead of the stored one")
	cmd.Flags().StringP("mode", "m", "stdio", "Transport mode: stdio, sse or streamable")
	cmd.Flags().String("host", "localhost", "HTTP listen host (sse and streamable modes)")
	cmd.Flags().IntP("port", "p", 3000, "HTTP listen port (sse and streamable modes)")
	cmd.Flags().Int("metrics-port", 9090, "Metrics listen port (sse and streamable modes)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")

	return cmd
}

func runMCP(opts *config.ServeOptions) error {
	logger := logging.Setup(opts.Debug || rootDebug)

	if opts.AppID == "" || opts.AppSecret == "" {
		return fmt.Errorf("app-id and app-secret are required (flags, config file or LARK_APP_ID/LARK_APP_SECRET)")
	}

	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Metrics stay off in stdio mode where stdout belongs to the protocol.
	provider, err := instrumentation.NewProvider(shutdownCtx, instrumentation.Config{
		Enabled:        opts.Mode != "stdio",
		ServiceName:    "lark-mcp",
		ServiceVersion: version,
	})
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil && opts.Mode != "stdio" {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	if provider.Enabled() {
		startMetricsServer(shutdownCtx, fmt.Sprintf("%s:%d", opts.Host, opts.MetricsPort), provider, logger)
	}

	client, err := lark.NewClient(lark.Config{
		AppID:     opts.AppID,
		AppSecret: opts.AppSecret,
		Domain:    opts.Domain,
		Metrics:   provider.Metrics(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	// The store is best effort: without it only the tenant token and an
	// explicitly supplied user token are available.
	store, err := auth.OpenStore(auth.DefaultStorePath(), logger)
	if err != nil {
		logger.Warn("credential store unavailable, continuing without stored tokens", logging.Err(err))
		store = nil
	}

	dispatcher := dispatch.New(dispatch.Config{
		Catalog: catalog.Default(),
		Client:  client,
		Store:   store,
		AppID:   opts.AppID,
		Metrics: provider.Metrics(),
		Logger:  logger,
	})

	serverContext := server.NewServerContext(shutdownCtx, client, store, dispatcher, logger)
	defer func() {
		if err := serverContext.Shutdown(); err != nil && opts.Mode != "stdio" {
			logger.Warn("server context shutdown failed", logging.Err(err))
		}
	}()

	locale := catalog.ParseLocale(opts.Language)
	selected := catalog.Filter(catalog.Default(), catalog.FilterCriteria{
		AllowTools: catalog.ExpandPresets(config.ParseStringList(opts.Tools)),
		TokenMode:  catalog.ParseTokenMode(opts.TokenMode),
		Locale:     locale,
	})
	if len(selected) == 0 {
		return fmt.Errorf("no tools selected, check --tools and --token-mode")
	}

	mcpSrv := mcpserver.NewMCPServer("lark-mcp", version,
		mcpserver.WithToolCapabilities(true),
	)
	if err := server.RegisterCatalogTools(mcpSrv, serverContext, selected, server.RegisterOptions{
		Locale:          locale,
		NameCase:        catalog.ParseNameCase(opts.ToolNameCase),
		UserAccessToken: opts.UserAccessToken,
	}); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)
	switch opts.Mode {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "sse":
		sseServer := mcpserver.NewSSEServer(mcpSrv,
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
		)
		logger.Info("starting MCP server", "mode", opts.Mode, "addr", addr)
		return runHTTPServer(shutdownCtx, addr, sseServer.Start, sseServer.Shutdown, logger)
	case "streamable":
		httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
			mcpserver.WithEndpointPath("/mcp"),
		)
		logger.Info("starting MCP server", "mode", opts.Mode, "addr", addr)
		return runHTTPServer(shutdownCtx, addr, httpServer.Start, httpServer.Shutdown, logger)
	default:
		return fmt.Errorf("unsupported transport mode: %s (supported: stdio, sse, streamable)", opts.Mode)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// runHTTPServer runs one of the HTTP transports until the context is
// cancelled, then shuts it down gracefully.
func runHTTPServer(ctx context.Context, addr string, start func(string) error, shutdown func(context.Context) error, logger *slog.Logger) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown failed", logging.Err(err))
		}
		<-serverDone
		return nil
	}
}

// startMetricsServer serves the Prometheus scrape endpoint on its own
// listener and tears it down with the context.
func startMetricsServer(ctx context.Context, addr string, provider *instrumentation.Provider, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", provider.MetricsHandler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server failed", logging.Err(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
