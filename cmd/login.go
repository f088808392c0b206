package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
)

func newLoginCmd() *cobra.Command {
	var (
		app     appFlags
		scopes  []string
		host    string
		port    int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in a user and store the access token",
		Long: `Run the OAuth authorization-code flow for the given application.

A local HTTP listener is started on host:port to receive the redirect,
the printed authorization URL has to be opened in a browser, and the
resulting user access token is stored for later tool calls.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(true); err != nil {
				return err
			}
			return runLogin(cmd, app, scopes, host, port, timeout)
		},
	}

	app.register(cmd)
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "OAuth scopes to request (comma-separated). Empty requests every permission granted to the app.")
	cmd.Flags().StringVar(&host, "host", "localhost", "Host the local callback listener binds to")
	cmd.Flags().IntVar(&port, "port", 3000, "Port the local callback listener binds to")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for the browser redirect")

	return cmd
}

func runLogin(cmd *cobra.Command, app appFlags, scopes []string, host string, port int, timeout time.Duration) error {
	logger := slog.Default()

	store, err := auth.OpenStore(auth.DefaultStorePath(), logger)
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	authenticator := auth.NewAuthenticator(store, logger)
	rec, err := authenticator.Login(cmd.Context(), auth.LoginOptions{
		AppID:     app.appID,
		AppSecret: app.appSecret,
		Domain:    app.domain,
		Scopes:    scopes,
		Host:      host,
		Port:      port,
		Timeout:   timeout,
		OnAuthURL: func(url string) {
			fmt.Printf("Open the following URL in your browser to authorize:\n\n  %s\n\n", url)
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Login succeeded for app %s (token %s, expires %s)\n",
		rec.AppID, rec.DisplayToken(), rec.ExpiresAt.Format(time.RFC3339))
	return nil
}
