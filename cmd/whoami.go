package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
)

func newWhoamiCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "List the stored login sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the sessions as a JSON document")

	return cmd
}

func runWhoami(jsonOutput bool) error {
	store, err := auth.OpenStore(auth.DefaultStorePath(), slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	sessions, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	if len(sessions) == 0 {
		fmt.Println("No stored sessions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "APP ID\tTOKEN\tEXPIRES\tSTATUS")
	for _, s := range sessions {
		status := "valid"
		if !s.Valid {
			status = "expired"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.AppID, s.Token, s.ExpiresAt.Format(time.RFC3339), status)
	}
	return w.Flush()
}
