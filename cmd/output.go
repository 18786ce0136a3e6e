package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/devconnect-cli/internal/adapters/render/social"
	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeDocument(cmd *cobra.Command, app *app, doc social.Document) error {
	rendered, err := app.render(doc, social.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}
