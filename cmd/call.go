package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/lark-mcp/internal/auth"
	"github.com/teemow/lark-mcp/internal/catalog"
	"github.com/teemow/lark-mcp/internal/dispatch"
	"github.com/teemow/lark-mcp/internal/lark"
	"github.com/teemow/lark-mcp/internal/logging"
)

func newCallCmd() *cobra.Command {
	var (
		app             appFlags
		params          string
		paramsFile      string
		userAccessToken string
	)

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke a single tool and print its result as JSON",
		Long: `Invoke one catalog tool directly against the OpenAPI.

Parameters are passed as a JSON object via --params or --params-file.
When no --user-access-token is given the stored token for the
application is attached if one is live; tools that only need the
tenant token run without any user credential.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.resolve(true); err != nil {
				return err
			}
			return runCall(cmd, args[0], app, params, paramsFile, userAccessToken)
		},
	}

	app.register(cmd)
	cmd.Flags().StringVarP(&params, "params", "p", "", "Tool parameters as a JSON object")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "File containing the tool parameters as a JSON object")
	cmd.Flags().StringVar(&userAccessToken, "user-access-token", "", "User access token to attach instead of the stored one")

	return cmd
}

// callError is the JSON error envelope printed on a failed call.
type callError struct {
	Kind    string `json:"kind"`
	Tool    string `json:"tool"`
	Message string `json:"message"`
}

func runCall(cmd *cobra.Command, name string, app appFlags, params, paramsFile, userAccessToken string) error {
	logger := slog.Default()

	rawParams := []byte(params)
	if paramsFile != "" {
		if params != "" {
			return fmt.Errorf("--params and --params-file are mutually exclusive")
		}
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return fmt.Errorf("failed to read params file: %w", err)
		}
		rawParams = data
	}

	client, err := lark.NewClient(lark.Config{
		AppID:     app.appID,
		AppSecret: app.appSecret,
		Domain:    app.domain,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	// The store is best effort: without it the call degrades to the
	// tenant token unless an explicit user token was given.
	var store *auth.Store
	if userAccessToken == "" {
		store, err = auth.OpenStore(auth.DefaultStorePath(), logger)
		if err != nil {
			logger.Warn("credential store unavailable, continuing without stored tokens", logging.Err(err))
		} else {
			defer func() {
				_ = store.Close()
			}()
		}
	}

	dispatcher := dispatch.New(dispatch.Config{
		Catalog: catalog.Default(),
		Client:  client,
		Store:   store,
		AppID:   app.appID,
		Logger:  logger,
	})

	result, err := dispatcher.CallTool(cmd.Context(), name, rawParams, dispatch.CallOptions{
		UserAccessToken: userAccessToken,
		PreferUserToken: true,
	})
	if err != nil {
		printCallError(name, err)
		return err
	}

	var pretty bytes.Buffer
	if indentErr := json.Indent(&pretty, result, "", "  "); indentErr != nil {
		fmt.Println(string(result))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func printCallError(name string, err error) {
	envelope := callError{Kind: "error", Tool: name, Message: err.Error()}
	var de *dispatch.Error
	if errors.As(err, &de) {
		envelope.Kind = string(de.Kind)
		envelope.Tool = de.Tool
		if de.Err != nil {
			envelope.Message = de.Err.Error()
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encodeErr := enc.Encode(map[string]callError{"error": envelope}); encodeErr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
