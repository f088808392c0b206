package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/lark"
)

// appFlags carries the application credential flags shared by the
// commands that talk to the OpenAPI.
type appFlags struct {
	appID     string
	appSecret string
	domain    string
}

func (f *appFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.appID, "app-id", "", "Application ID. Can also use LARK_APP_ID env var.")
	cmd.Flags().StringVar(&f.appSecret, "app-secret", "", "Application secret. Can also use LARK_APP_SECRET env var.")
	cmd.Flags().StringVar(&f.domain, "domain", lark.FeishuDomain, "OpenAPI base URL. Can also use LARK_DOMAIN env var.")
}

// resolve fills unset flags from the environment and validates that an
// application id is present. requireSecret additionally demands the
// application secret.
func (f *appFlags) resolve(requireSecret bool) error {
	if f.appID == "" {
		f.appID = os.Getenv("LARK_APP_ID")
	}
	if f.appSecret == "" {
		f.appSecret = os.Getenv("LARK_APP_SECRET")
	}
	if f.domain == lark.FeishuDomain || f.domain == "" {
		if d := os.Getenv("LARK_DOMAIN"); d != "" {
			f.domain = d
		}
	}
	if f.appID == "" {
		return fmt.Errorf("application id is required (--app-id or LARK_APP_ID)")
	}
	if requireSecret && f.appSecret == "" {
		return fmt.Errorf("application secret is required (--app-secret or LARK_APP_SECRET)")
	}
	return nil
}
