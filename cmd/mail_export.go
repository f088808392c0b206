package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
	"github.com/teemow/lark-mcp/internal/lark"
	"github.com/teemow/lark-mcp/internal/mailexport"
)

// mailExportFlags are shared by the pipeline stages.
type mailExportFlags struct {
	app             appFlags
	mailbox         string
	userAccessToken string
	input           string
	output          string
}

func newMailExportCmd() *cobra.Command {
	var flags mailExportFlags

	cmd := &cobra.Command{
		Use:   "mail-export",
		Short: "Fetch, parse and export mailbox messages as a text digest",
		Long: `Export mailbox messages through a staged pipeline.

The stages mirror each other's JSON documents, so they can run one at a
time with -i/-o, or all at once with the process subcommand. Mail APIs
require a user access token; one is taken from --user-access-token or
from the stored login for the application.`,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.app.appID, "app-id", "", "Application ID. Can also use LARK_APP_ID env var.")
	pf.StringVar(&flags.app.appSecret, "app-secret", "", "Application secret. Can also use LARK_APP_SECRET env var.")
	pf.StringVar(&flags.app.domain, "domain", lark.FeishuDomain, "OpenAPI base URL. Can also use LARK_DOMAIN env var.")
	pf.StringVar(&flags.mailbox, "mailbox", "", "Mailbox address or id")
	pf.StringVar(&flags.userAccessToken, "user-access-token", "", "User access token. Defaults to the stored login for the application.")
	pf.StringVarP(&flags.input, "input", "i", "", "Input file (default: stdin is not read, the previous stage runs in memory)")
	pf.StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	cmd.AddCommand(newMailFetchListCmd(&flags))
	cmd.AddCommand(newMailFetchDetailCmd(&flags))
	cmd.AddCommand(newMailParseCmd(&flags))
	cmd.AddCommand(newMailExportStageCmd(&flags))
	cmd.AddCommand(newMailProcessCmd(&flags))

	return cmd
}

func newMailFetchListCmd(flags *mailExportFlags) *cobra.Command {
	var (
		folder string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "fetch-list",
		Short: "Collect message ids from a mailbox folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			processor, cleanup, err := newMailProcessor(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := processor.FetchList(cmd.Context(), folder, count)
			if err != nil {
				return err
			}
			return writeStageJSON(flags.output, list,
				fmt.Sprintf("Saved %d message ids", list.Count))
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "INBOX", "Mailbox folder id")
	cmd.Flags().IntVar(&count, "count", 10, "Maximum number of messages to list")

	return cmd
}

func newMailFetchDetailCmd(flags *mailExportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-detail",
		Short: "Fetch full message details for a fetched id list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list mailexport.MessageList
			if err := readStageJSON(flags.input, &list); err != nil {
				return err
			}

			processor, cleanup, err := newMailProcessor(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			details, err := processor.FetchDetails(cmd.Context(), &list)
			if err != nil {
				return err
			}
			return writeStageJSON(flags.output, details,
				fmt.Sprintf("Saved %d message details", details.Count))
		},
	}
}

func newMailParseCmd(flags *mailExportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Reduce fetched message details to plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			var details mailexport.MessageDetails
			if err := readStageJSON(flags.input, &details); err != nil {
				return err
			}

			parsed := mailexport.Parse(&details)
			return writeStageJSON(flags.output, parsed,
				fmt.Sprintf("Saved %d parsed messages", parsed.Count))
		},
	}
}

func newMailExportStageCmd(flags *mailExportFlags) *cobra.Command {
	var maxBodyLength int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render parsed messages as a text digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			var parsed mailexport.ParsedMail
			if err := readStageJSON(flags.input, &parsed); err != nil {
				return err
			}

			digest := mailexport.Export(&parsed, maxBodyLength)
			return writeStageText(flags.output, digest)
		},
	}

	cmd.Flags().IntVar(&maxBodyLength, "max-body-length", 0, "Truncate message bodies to this many characters (0 uses the default)")

	return cmd
}

func newMailProcessCmd(flags *mailExportFlags) *cobra.Command {
	var (
		folder        string
		count         int
		maxBodyLength int
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the whole pipeline in one go",
		RunE: func(cmd *cobra.Command, args []string) error {
			processor, cleanup, err := newMailProcessor(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := processor.FetchList(cmd.Context(), folder, count)
			if err != nil {
				return err
			}
			details, err := processor.FetchDetails(cmd.Context(), list)
			if err != nil {
				return err
			}
			digest := mailexport.Export(mailexport.Parse(details), maxBodyLength)
			return writeStageText(flags.output, digest)
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "INBOX", "Mailbox folder id")
	cmd.Flags().IntVar(&count, "count", 10, "Maximum number of messages to process")
	cmd.Flags().IntVar(&maxBodyLength, "max-body-length", 0, "Truncate message bodies to this many characters (0 uses the default)")

	return cmd
}

// newMailProcessor assembles the OpenAPI client and resolves a user
// access token, falling back to the stored login for the application.
func newMailProcessor(flags *mailExportFlags) (*mailexport.Processor, func(), error) {
	if err := flags.app.resolve(true); err != nil {
		return nil, nil, err
	}
	if flags.mailbox == "" {
		return nil, nil, fmt.Errorf("--mailbox is required")
	}
	logger := slog.Default()

	client, err := lark.NewClient(lark.Config{
		AppID:     flags.app.appID,
		AppSecret: flags.app.appSecret,
		Domain:    flags.app.domain,
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, err
	}

	token := flags.userAccessToken
	if token == "" {
		store, err := auth.OpenStore(auth.DefaultStorePath(), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open credential store: %w", err)
		}
		defer func() {
			_ = store.Close()
		}()

		key, ok := store.GetLocalAccessToken(flags.app.appID)
		if !ok {
			return nil, nil, fmt.Errorf("no stored login for app %s, run lark-mcp login first", flags.app.appID)
		}
		rec, err := store.GetToken(key)
		if err != nil {
			return nil, nil, fmt.Errorf("stored login for app %s is unusable: %w", flags.app.appID, err)
		}
		token = rec.Token
	}

	processor, err := mailexport.NewProcessor(client, token, flags.mailbox, logger)
	if err != nil {
		return nil, nil, err
	}
	return processor, func() {}, nil
}

func readStageJSON(input string, v any) error {
	if input == "" {
		return fmt.Errorf("--input is required for this stage")
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode input file: %w", err)
	}
	return nil
}

func writeStageJSON(output string, v any, note string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%s to %s\n", note, output)
	return nil
}

func writeStageText(output, text string) error {
	if output == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s (%d chars)\n", output, len(text))
	return nil
}
