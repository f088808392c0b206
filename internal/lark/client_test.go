package lark

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/instrumentation"
)

// fakePlatform emulates the OpenAPI auth endpoint plus one data endpoint.
type fakePlatform struct {
	srv        *httptest.Server
	tokenCalls atomic.Int64
	lastAuth   string
	handler    http.HandlerFunc
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()
	p := &fakePlatform{}
	mux := http.NewServeMux()
	mux.HandleFunc("/open-apis/auth/v3/tenant_access_token/internal", func(w http.ResponseWriter, r *http.Request) {
		p.tokenCalls.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cli_test", body["app_id"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"msg":"ok","tenant_access_token":"t-abc","expire":7200}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		p.lastAuth = r.Header.Get("Authorization")
		if p.handler != nil {
			p.handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"msg":"success","data":{"items":[1,2]}}`))
	})
	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func newTestClient(t *testing.T, p *fakePlatform) *Client {
	t.Helper()
	c, err := NewClient(Config{
		AppID:     "cli_test",
		AppSecret: "secret",
		Domain:    p.srv.URL,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{AppID: "cli_test"})
	assert.Error(t, err)

	_, err = NewClient(Config{AppSecret: "secret"})
	assert.Error(t, err)
}

func TestDoUnwrapsEnvelope(t *testing.T) {
	p := newFakePlatform(t)
	c := newTestClient(t, p)

	data, err := c.Do(context.Background(), "GET", "/open-apis/im/v1/chats", nil, nil, catalog.Authorization{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[1,2]}`, string(data))
	assert.Equal(t, "Bearer t-abc", p.lastAuth, "tenant token attached by default")
}

func TestDoUsesUserTokenWhenSet(t *testing.T) {
	p := newFakePlatform(t)
	c := newTestClient(t, p)

	_, err := c.Do(context.Background(), "GET", "/open-apis/im/v1/chats", nil, nil,
		catalog.Authorization{UserAccessToken: "u-xyz"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer u-xyz", p.lastAuth)
	assert.Zero(t, p.tokenCalls.Load(), "no tenant token fetch for user-level calls")
}

func TestTenantTokenIsCached(t *testing.T) {
	p := newFakePlatform(t)
	c := newTestClient(t, p)

	for i := 0; i < 3; i++ {
		_, err := c.Do(context.Background(), "GET", "/open-apis/im/v1/chats", nil, nil, catalog.Authorization{})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), p.tokenCalls.Load())
}

func TestTenantTokenFetchRecordsMetric(t *testing.T) {
	p := newFakePlatform(t)
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	m, err := instrumentation.NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	c, err := NewClient(Config{
		AppID:     "cli_test",
		AppSecret: "secret",
		Domain:    p.srv.URL,
		Metrics:   m,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Do(context.Background(), "GET", "/open-apis/im/v1/chats", nil, nil, catalog.Authorization{})
		require.NoError(t, err)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var fetches int64
	for _, scope := range rm.ScopeMetrics {
		for _, metric := range scope.Metrics {
			if metric.Name != "auth_operations_total" {
				continue
			}
			sum, ok := metric.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				fetches += dp.Value
			}
		}
	}
	assert.Equal(t, int64(1), fetches, "cached token reuse must not re-record")
}

func TestDoPlatformError(t *testing.T) {
	p := newFakePlatform(t)
	p.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":99991663,"msg":"token invalid"}`))
	}
	c := newTestClient(t, p)

	_, err := c.Do(context.Background(), "GET", "/open-apis/im/v1/chats", nil, nil, catalog.Authorization{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 99991663, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "token invalid")
}

func TestDoNonJSONSuccessBody(t *testing.T) {
	p := newFakePlatform(t)
	p.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("raw-file-bytes"))
	}
	c := newTestClient(t, p)

	data, err := c.Do(context.Background(), "GET", "/open-apis/drive/v1/medias/x/download", nil, nil, catalog.Authorization{})
	require.NoError(t, err)

	var s string
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, "raw-file-bytes", s)
}

func TestDoSendsQueryAndBody(t *testing.T) {
	p := newFakePlatform(t)
	var gotQuery string
	var gotBody map[string]any
	p.handler = func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"data":{}}`))
	}
	c := newTestClient(t, p)

	_, err := c.Do(context.Background(), "POST", "/open-apis/im/v1/messages",
		map[string]string{"receive_id_type": "chat_id"},
		map[string]any{"content": "{\"text\":\"hi\"}"},
		catalog.Authorization{})
	require.NoError(t, err)
	assert.Equal(t, "receive_id_type=chat_id", gotQuery)
	assert.Equal(t, "{\"text\":\"hi\"}", gotBody["content"])
}

func TestDoEmptyDataYieldsEmptyObject(t *testing.T) {
	p := newFakePlatform(t)
	p.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"msg":"success"}`))
	}
	c := newTestClient(t, p)

	data, err := c.Do(context.Background(), "POST", "/open-apis/im/v1/messages", nil, nil, catalog.Authorization{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
