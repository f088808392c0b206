package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/teemow/lark-mcp/internal/auth"
	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/instrumentation"
	"github.com/teemow/lark-mcp/internal/logging"
)

// Dispatcher executes catalog tools against the OpenAPI client.
type Dispatcher struct {
	catalog *catalog.Catalog
	client  catalog.Caller
	store   *auth.Store // nil when no credential store is attached
	appID   string
	logger  *slog.Logger
	metrics *instrumentation.Metrics // nil disables recording
}

// Config assembles a Dispatcher.
type Config struct {
	Catalog *catalog.Catalog
	Client  catalog.Caller
	// Store supplies stored user tokens, looked up by AppID. Optional.
	Store *auth.Store
	AppID string
	// Metrics records tool invocation and credential lookup metrics.
	// Optional.
	Metrics *instrumentation.Metrics
	Logger  *slog.Logger
}

// New creates a Dispatcher.
func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		catalog: cfg.Catalog,
		client:  cfg.Client,
		store:   cfg.Store,
		appID:   cfg.AppID,
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// CallOptions carries per-call credential hints.
type CallOptions struct {
	// UserAccessToken, when set, is used instead of any stored token.
	UserAccessToken string
	// PreferUserToken switches the call to user-level authorization
	// whenever a token is available, even if the parameters do not ask
	// for it. The CLI sets this; the MCP path relies on the useUAT
	// parameter instead.
	PreferUserToken bool
}

// CallTool resolves name, validates rawParams, attaches a credential if
// one applies and executes the tool. On success the unwrapped data
// payload is returned; every failure is a *Error.
func (d *Dispatcher) CallTool(ctx context.Context, name string, rawParams []byte, opts CallOptions) (json.RawMessage, error) {
	start := time.Now()
	result, err := d.callTool(ctx, name, rawParams, opts)
	if d.metrics != nil {
		d.metrics.RecordToolInvocation(ctx, name, err, time.Since(start))
	}
	return result, err
}

func (d *Dispatcher) callTool(ctx context.Context, name string, rawParams []byte, opts CallOptions) (json.RawMessage, error) {
	tool, ok := d.catalog.FindCased(name)
	if !ok {
		return nil, &Error{Kind: KindToolNotFound, Tool: name, Err: fmt.Errorf("unknown tool")}
	}
	logger := logging.WithTool(d.logger, tool.Name)

	params, err := decodeParams(rawParams)
	if err != nil {
		return nil, &Error{Kind: KindParamsParse, Tool: tool.Name, Err: err}
	}
	if err := validateParams(tool.Name, tool.Schema, anyParams(params)); err != nil {
		return nil, &Error{Kind: KindParamsParse, Tool: tool.Name, Err: err}
	}

	authz := d.resolveAuthorization(ctx, tool, params, opts, logger)
	if tool.RequiresUserToken() && !authz.UseUser() {
		return nil, &Error{Kind: KindCredentialUnavailable, Tool: tool.Name,
			Err: fmt.Errorf("tool requires a user access token and none is supplied or stored")}
	}

	var result json.RawMessage
	switch exec := tool.Execution.(type) {
	case catalog.Custom:
		result, err = exec.Run(ctx, d.client, params, authz)
	case catalog.Declarative:
		result, err = d.invoke(ctx, exec, params, authz)
	default:
		err = fmt.Errorf("tool has no execution strategy")
	}
	if err != nil {
		logger.Debug("tool call failed", logging.Err(err))
		return nil, &Error{Kind: KindRemoteCall, Tool: tool.Name, Err: err}
	}

	logger.Debug("tool call succeeded", logging.Status(logging.StatusSuccess))
	return result, nil
}

// resolveAuthorization picks the credential for one call. A missing or
// expired stored token degrades to tenant-level authorization; the
// remote call surfaces any resulting permission error itself. Tools
// that only work with user-level authorization are rejected before the
// remote call instead (see callTool).
func (d *Dispatcher) resolveAuthorization(ctx context.Context, tool *catalog.ToolDescriptor, params map[string]any, opts CallOptions, logger *slog.Logger) catalog.Authorization {
	wantUser := opts.PreferUserToken || tool.RequiresUserToken()
	if v, ok := params["useUAT"].(bool); ok && v {
		wantUser = true
	}
	delete(params, "useUAT")

	if !wantUser || !tool.AcceptsUserToken() {
		return catalog.Authorization{}
	}

	token := opts.UserAccessToken
	if token == "" && d.store != nil && d.appID != "" {
		if key, ok := d.store.GetLocalAccessToken(d.appID); ok {
			rec, err := d.store.GetToken(key)
			if d.metrics != nil {
				d.metrics.RecordAuthOperation(ctx, "stored_token_lookup", err)
			}
			if err != nil {
				logger.Debug("stored token unusable, falling back to tenant token", logging.Err(err))
			} else {
				token = rec.Token
			}
		}
	}
	if token == "" {
		logger.Debug("no user access token available for user-level tool")
		return catalog.Authorization{}
	}
	return catalog.Authorization{UserAccessToken: token}
}

// invoke is the generic declarative invoker: it maps the binding's
// method and path plus the conventional path/params/data parameter
// members onto one client call.
func (d *Dispatcher) invoke(ctx context.Context, binding catalog.Declarative, params map[string]any, authz catalog.Authorization) (json.RawMessage, error) {
	path, err := expandPath(binding.Path, params)
	if err != nil {
		return nil, err
	}

	var query map[string]string
	if q, ok := params["params"].(map[string]any); ok {
		query = make(map[string]string, len(q))
		for k, v := range q {
			query[k] = stringify(v)
		}
	}

	var body any
	if data, ok := params["data"]; ok {
		body = data
	}

	return d.client.Do(ctx, binding.HTTPMethod, path, query, body, authz)
}

// expandPath substitutes ':name' segments from the "path" member.
func expandPath(template string, params map[string]any) (string, error) {
	if !strings.Contains(template, ":") {
		return template, nil
	}
	pathParams, _ := params["path"].(map[string]any)

	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		value, ok := pathParams[name]
		if !ok {
			return "", fmt.Errorf("missing path parameter %q", name)
		}
		segments[i] = stringify(value)
	}
	return strings.Join(segments, "/"), nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		// JSON numbers decode as float64; render integers without a
		// fractional part.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func decodeParams(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to parse params JSON: %w", err)
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}

// anyParams converts to the interface form jsonschema validates.
func anyParams(params map[string]any) any {
	return map[string]any(params)
}
