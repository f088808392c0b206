package mailexport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/teemow/lark-mcp/internal/catalog"
)

// listPageSize caps one message-list page.
const listPageSize = 50

// detailFetchDelay spaces out sequential detail fetches.
const detailFetchDelay = 100 * time.Millisecond

// Processor runs the export pipeline against one mailbox. All calls
// run with user-level authorization: the mail API has no tenant-level
// read access.
type Processor struct {
	client  catalog.Caller
	auth    catalog.Authorization
	mailbox string
	logger  *slog.Logger
}

// NewProcessor creates a Processor for the given mailbox id (usually
// the user's email address).
func NewProcessor(client catalog.Caller, userAccessToken, mailbox string, logger *slog.Logger) (*Processor, error) {
	if mailbox == "" {
		return nil, fmt.Errorf("mailbox is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		client:  client,
		auth:    catalog.Authorization{UserAccessToken: userAccessToken},
		mailbox: mailbox,
		logger:  logger,
	}, nil
}

// MessageList is the fetch-list stage output.
type MessageList struct {
	Mailbox string   `json:"mailbox"`
	Folder  string   `json:"folder"`
	Count   int      `json:"count"`
	Items   []string `json:"items"`
}

// Address is one mail participant.
type Address struct {
	Name        string `json:"name"`
	MailAddress string `json:"mail_address"`
}

func (a Address) String() string {
	if a.Name != "" {
		return a.Name + " <" + a.MailAddress + ">"
	}
	return a.MailAddress
}

// Message is the raw per-message detail as returned by the API. Bodies
// are base64 encoded.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Subject   string    `json:"subject"`
	From      *Address  `json:"from"`
	To        []Address `json:"to"`
	Date      string    `json:"date"`
	SendTime  string    `json:"send_time"`
	BodyPlain string    `json:"body_plain"`
	BodyHTML  string    `json:"body_html"`
}

// MessageDetails is the fetch-detail stage output.
type MessageDetails struct {
	Mailbox  string    `json:"mailbox"`
	Count    int       `json:"count"`
	Messages []Message `json:"messages"`
}

// ParsedMessage is one message reduced to plain text.
type ParsedMessage struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Body       string `json:"body"`
	BodyLength int    `json:"bodyLength"`
}

// ParsedMail is the parse stage output.
type ParsedMail struct {
	Mailbox  string          `json:"mailbox"`
	Count    int             `json:"count"`
	Messages []ParsedMessage `json:"messages"`
}

// FetchList collects up to count message ids from a folder, following
// pagination.
func (p *Processor) FetchList(ctx context.Context, folder string, count int) (*MessageList, error) {
	if folder == "" {
		folder = "INBOX"
	}
	if count <= 0 {
		count = 10
	}

	path := "/open-apis/mail/v1/user_mailboxes/" + p.mailbox + "/messages"

	var items []string
	pageToken := ""
	for len(items) < count {
		pageSize := count - len(items)
		if pageSize > listPageSize {
			pageSize = listPageSize
		}
		query := map[string]string{
			"folder_id": folder,
			"page_size": strconv.Itoa(pageSize),
		}
		if pageToken != "" {
			query["page_token"] = pageToken
		}

		raw, err := p.client.Do(ctx, "GET", path, query, nil, p.auth)
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		var page struct {
			Items     []string `json:"items"`
			HasMore   bool     `json:"has_more"`
			PageToken string   `json:"page_token"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to decode message list: %w", err)
		}
		items = append(items, page.Items...)
		if !page.HasMore {
			break
		}
		pageToken = page.PageToken
	}

	if len(items) > count {
		items = items[:count]
	}
	p.logger.Info("fetched message list", "folder", folder, "count", len(items))
	return &MessageList{Mailbox: p.mailbox, Folder: folder, Count: len(items), Items: items}, nil
}

// FetchDetails fetches each listed message's detail sequentially. A
// message that fails to fetch is logged and skipped, so one bad
// message never aborts the batch.
func (p *Processor) FetchDetails(ctx context.Context, list *MessageList) (*MessageDetails, error) {
	details := &MessageDetails{Mailbox: p.mailbox}
	for i, id := range list.Items {
		if i > 0 {
			select {
			case <-time.After(detailFetchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		path := "/open-apis/mail/v1/user_mailboxes/" + p.mailbox + "/messages/" + id
		raw, err := p.client.Do(ctx, "GET", path, nil, nil, p.auth)
		if err != nil {
			p.logger.Warn("failed to fetch message detail", "message_id", id, "error", err)
			continue
		}

		var detail struct {
			Message Message `json:"message"`
		}
		if err := json.Unmarshal(raw, &detail); err != nil {
			p.logger.Warn("failed to decode message detail", "message_id", id, "error", err)
			continue
		}
		if detail.Message.ID == "" {
			detail.Message.ID = id
		}
		details.Messages = append(details.Messages, detail.Message)
	}
	details.Count = len(details.Messages)
	p.logger.Info("fetched message details", "count", details.Count)
	return details, nil
}

// parsedBodyLimit caps stored body text; exports truncate further.
const parsedBodyLimit = 5000

// Parse reduces fetched messages to plain text. The plain body wins
// when present; otherwise the HTML body is converted.
func Parse(details *MessageDetails) *ParsedMail {
	parsed := &ParsedMail{Mailbox: details.Mailbox}
	for _, msg := range details.Messages {
		body := decodeBody(msg.BodyPlain)
		if body == "" {
			body = HTMLToText(decodeBody(msg.BodyHTML))
		}

		subject := msg.Subject
		if subject == "" {
			subject = "No Subject"
		}
		id := msg.ThreadID
		if id == "" {
			id = msg.ID
		}
		date := msg.Date
		if date == "" {
			date = msg.SendTime
		}

		var from string
		if msg.From != nil {
			from = msg.From.String()
		}
		to := make([]string, 0, len(msg.To))
		for _, addr := range msg.To {
			to = append(to, addr.String())
		}

		stored := body
		if len(stored) > parsedBodyLimit {
			stored = stored[:parsedBodyLimit]
		}
		parsed.Messages = append(parsed.Messages, ParsedMessage{
			ID:         id,
			Subject:    subject,
			From:       from,
			To:         strings.Join(to, ", "),
			Date:       date,
			Body:       stored,
			BodyLength: len(body),
		})
	}
	parsed.Count = len(parsed.Messages)
	return parsed
}

// decodeBody decodes a base64 body, tolerating bodies that were never
// encoded in the first place.
func decodeBody(s string) string {
	if s == "" {
		return ""
	}
	if decoded, err := base64.StdEncoding.DecodeString(s); err == nil {
		return string(decoded)
	}
	return s
}

// Export renders parsed messages as a digest suitable for feeding to a
// summarizer. Bodies longer than maxBodyLength are truncated with a
// note of the original length.
func Export(parsed *ParsedMail, maxBodyLength int) string {
	if maxBodyLength <= 0 {
		maxBodyLength = 2000
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Mail digest (%d messages)\n", parsed.Count)
	fmt.Fprintf(&b, "Mailbox: %s\n\n", parsed.Mailbox)

	for i, msg := range parsed.Messages {
		fmt.Fprintf(&b, "=== Message %d ===\n", i+1)
		fmt.Fprintf(&b, "Subject: %s\n", msg.Subject)
		fmt.Fprintf(&b, "From: %s\n", msg.From)
		fmt.Fprintf(&b, "To: %s\n", msg.To)
		fmt.Fprintf(&b, "Date: %s\n\n", msg.Date)
		b.WriteString("Body:\n")

		body := msg.Body
		if len(body) > maxBodyLength {
			body = body[:maxBodyLength]
		}
		b.WriteString(body)
		b.WriteByte('\n')
		if msg.BodyLength > maxBodyLength {
			fmt.Fprintf(&b, "... (truncated, original length %d chars)\n", msg.BodyLength)
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}
