package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
)

func newLogoutCmd() *cobra.Command {
	var (
		appID string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored user access tokens",
		Long: `Remove the stored user access token for one application, or every
stored token when no application is given. Logging out an application
that has no stored token is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				appID = ""
			}
			return runLogout(auth.DefaultStorePath(), appID)
		},
	}

	cmd.Flags().StringVar(&appID, "app-id", "", "Application whose token to remove (default: all applications)")
	cmd.Flags().BoolVar(&all, "all", false, "Remove every stored token")

	return cmd
}

// runLogout removes the token for appID, or every stored token when
// appID is empty.
func runLogout(storePath, appID string) error {
	store, err := auth.OpenStore(storePath, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if appID == "" {
		if err := store.DeleteAll(); err != nil {
			return fmt.Errorf("failed to remove stored tokens: %w", err)
		}
		fmt.Println("Removed all stored tokens")
		return nil
	}

	if err := store.Delete(appID); err != nil {
		return fmt.Errorf("failed to remove token for app %s: %w", appID, err)
	}
	fmt.Printf("Removed stored token for app %s\n", appID)
	return nil
}
