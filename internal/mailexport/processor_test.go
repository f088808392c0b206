package mailexport

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/lark-mcp/internal/catalog"
)

// scriptedCaller replays canned responses keyed by request order and
// records the requests it saw.
type scriptedCaller struct {
	responses []scriptedResponse
	requests  []scriptedRequest
}

type scriptedResponse struct {
	body json.RawMessage
	err  error
}

type scriptedRequest struct {
	method string
	path   string
	query  map[string]string
}

func (s *scriptedCaller) Do(ctx context.Context, method, path string, query map[string]string, body any, auth catalog.Authorization) (json.RawMessage, error) {
	s.requests = append(s.requests, scriptedRequest{method: method, path: path, query: query})
	if len(s.responses) == 0 {
		return json.RawMessage(`{}`), nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp.body, resp.err
}

func newTestProcessor(t *testing.T, caller *scriptedCaller) *Processor {
	t.Helper()
	p, err := NewProcessor(caller, "u-token", "me@example.com", nil)
	require.NoError(t, err)
	return p
}

func TestNewProcessorValidation(t *testing.T) {
	_, err := NewProcessor(&scriptedCaller{}, "", "me@example.com", nil)
	assert.Error(t, err, "user access token is mandatory for mail APIs")

	_, err = NewProcessor(&scriptedCaller{}, "u-token", "", nil)
	assert.Error(t, err, "mailbox is mandatory")
}

func TestFetchListFollowsPagination(t *testing.T) {
	caller := &scriptedCaller{responses: []scriptedResponse{
		{body: json.RawMessage(`{"items":["m1","m2"],"has_more":true,"page_token":"pt1"}`)},
		{body: json.RawMessage(`{"items":["m3"],"has_more":false}`)},
	}}
	p := newTestProcessor(t, caller)

	list, err := p.FetchList(context.Background(), "INBOX", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, []string{"m1", "m2", "m3"}, list.Items)

	require.Len(t, caller.requests, 2)
	assert.Equal(t, "/open-apis/mail/v1/user_mailboxes/me@example.com/messages", caller.requests[0].path)
	assert.Equal(t, "INBOX", caller.requests[0].query["folder_id"])
	assert.Equal(t, "pt1", caller.requests[1].query["page_token"])
}

func TestFetchListCapsAtRequestedCount(t *testing.T) {
	caller := &scriptedCaller{responses: []scriptedResponse{
		{body: json.RawMessage(`{"items":["m1","m2","m3"],"has_more":true,"page_token":"pt1"}`)},
	}}
	p := newTestProcessor(t, caller)

	list, err := p.FetchList(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, list.Items)
	assert.Len(t, caller.requests, 1, "no further page once the count is reached")
}

func TestFetchDetailsSkipsFailedMessages(t *testing.T) {
	caller := &scriptedCaller{responses: []scriptedResponse{
		{body: json.RawMessage(`{"message":{"id":"m1","subject":"first"}}`)},
		{err: fmt.Errorf("boom")},
		{body: json.RawMessage(`{"message":{"subject":"third"}}`)},
	}}
	p := newTestProcessor(t, caller)

	list := &MessageList{Items: []string{"m1", "m2", "m3"}}
	details, err := p.FetchDetails(context.Background(), list)
	require.NoError(t, err)
	require.Equal(t, 2, details.Count)
	assert.Equal(t, "first", details.Messages[0].Subject)
	// A detail without an id inherits the listed one.
	assert.Equal(t, "m3", details.Messages[1].ID)
}

func TestFetchDetailsHonorsCancellation(t *testing.T) {
	caller := &scriptedCaller{responses: []scriptedResponse{
		{body: json.RawMessage(`{"message":{"id":"m1"}}`)},
	}}
	p := newTestProcessor(t, caller)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The inter-request delay observes the context; with two items the
	// second wait aborts.
	_, err := p.FetchDetails(ctx, &MessageList{Items: []string{"m1", "m2"}})
	assert.ErrorIs(t, err, context.Canceled)
}
