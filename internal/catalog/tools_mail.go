package catalog

import "encoding/json"

func mailTools() []ToolDescriptor {
	return []ToolDescriptor{
		{
			Name: "mail_v1_user_mailbox_message_list",
			Description: Text{
				EN: "List messages in a folder of the authorized user's mailbox, paginated.",
				ZH: "获取用户邮箱指定文件夹下的邮件列表，支持分页。",
			},
			Project: "mail",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"user_mailbox_id": {"type": "string", "description": "Mailbox id, usually the user's email address"}
						},
						"required": ["user_mailbox_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"folder_id": {"type": "string", "description": "Folder id, e.g. INBOX"},
							"page_size": {"type": "integer", "description": "Page size, max 50"},
							"page_token": {"type": "string", "description": "Pagination token from a previous call"}
						}
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/mail/v1/user_mailboxes/:user_mailbox_id/messages",
				SDKName:    "mail.v1.userMailboxMessage.list",
			},
		},
		{
			Name: "mail_v1_user_mailbox_message_get",
			Description: Text{
				EN: "Fetch the full detail of one message, including headers and body.",
				ZH: "获取单封邮件的详情，包含邮件头和正文。",
			},
			Project: "mail",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"user_mailbox_id": {"type": "string", "description": "Mailbox id, usually the user's email address"},
							"message_id": {"type": "string", "description": "Message id"}
						},
						"required": ["user_mailbox_id", "message_id"]
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/mail/v1/user_mailboxes/:user_mailbox_id/messages/:message_id",
				SDKName:    "mail.v1.userMailboxMessage.get",
			},
		},
		{
			Name: "mail_v1_user_mailbox_message_send",
			Description: Text{
				EN: "Send an email from the authorized user's mailbox.",
				ZH: "以用户身份从其邮箱发送邮件。",
			},
			Project: "mail",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"user_mailbox_id": {"type": "string", "description": "Mailbox id, usually the user's email address"}
						},
						"required": ["user_mailbox_id"]
					},
					"data": {
						"type": "object",
						"properties": {
							"subject": {"type": "string", "description": "Email subject"},
							"to": {"type": "array", "items": {"type": "object"}, "description": "Recipient list"},
							"body_html": {"type": "string", "description": "HTML body"},
							"body_plain_text": {"type": "string", "description": "Plain text body"}
						},
						"required": ["subject", "to"]
					},
					` + useUATSchema + `
				},
				"required": ["path", "data"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "POST",
				Path:       "/open-apis/mail/v1/user_mailboxes/:user_mailbox_id/messages/send",
				SDKName:    "mail.v1.userMailboxMessage.send",
			},
		},
		{
			Name: "mail_v1_user_mailbox_folder_list",
			Description: Text{
				EN: "List the folders of the authorized user's mailbox.",
				ZH: "获取用户邮箱的文件夹列表。",
			},
			Project: "mail",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"user_mailbox_id": {"type": "string", "description": "Mailbox id, usually the user's email address"}
						},
						"required": ["user_mailbox_id"]
					},
					` + useUATSchema + `
				},
				"required": ["path"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/mail/v1/user_mailboxes/:user_mailbox_id/folders",
				SDKName:    "mail.v1.userMailboxFolder.list",
			},
		},
		{
			Name: "mail_v1_user_mailbox_attachment_download_url",
			Description: Text{
				EN: "Get temporary download URLs for message attachments.",
				ZH: "获取邮件附件的临时下载链接。",
			},
			Project: "mail",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "object",
						"properties": {
							"user_mailbox_id": {"type": "string", "description": "Mailbox id, usually the user's email address"},
							"message_id": {"type": "string", "description": "Message id"}
						},
						"required": ["user_mailbox_id", "message_id"]
					},
					"params": {
						"type": "object",
						"properties": {
							"attachment_ids": {"type": "string", "description": "Comma separated attachment ids"}
						},
						"required": ["attachment_ids"]
					},
					` + useUATSchema + `
				},
				"required": ["path", "params"]
			}`),
			AccessTokens: []TokenKind{TokenUser},
			Execution: Declarative{
				HTTPMethod: "GET",
				Path:       "/open-apis/mail/v1/user_mailboxes/:user_mailbox_id/messages/:message_id/attachments/download_url",
				SDKName:    "mail.v1.userMailboxMessageAttachment.downloadUrl",
			},
			SupportsFileDownload: true,
		},
	}
}
