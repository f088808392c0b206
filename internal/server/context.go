package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teemow/lark-mcp/internal/auth"
	"github.com/teemow/lark-mcp/internal/dispatch"
	"github.com/teemow/lark-mcp/internal/lark"
)

// ServerContext holds the shared state for one MCP server instance.
type ServerContext struct {
	ctx        context.Context
	cancel     context.CancelFunc
	client     *lark.Client
	store      *auth.Store
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger

	mu       sync.Mutex
	shutdown bool
}

// NewServerContext creates the shared server state. The store may be
// nil when no credential store is available; tools then run on the
// tenant token or an explicitly supplied user token only.
func NewServerContext(ctx context.Context, client *lark.Client, store *auth.Store, dispatcher *dispatch.Dispatcher, logger *slog.Logger) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	return &ServerContext{
		ctx:        shutdownCtx,
		cancel:     cancel,
		client:     client,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Context returns the server's lifetime context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Dispatcher returns the tool dispatcher.
func (sc *ServerContext) Dispatcher() *dispatch.Dispatcher {
	return sc.dispatcher
}

// Shutdown cancels the server context and closes the credential store.
// It is safe to call more than once.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.shutdown {
		return nil
	}
	sc.shutdown = true
	sc.cancel()
	if sc.store != nil {
		return sc.store.Close()
	}
	return nil
}
