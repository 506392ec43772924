package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLanguagesCmd(app *app) *cobra.Command {
	var selectorList bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported translation languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := domain.InitiationCatalog
			if selectorList {
				catalog = domain.SelectorCatalog
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(catalog.Entries())
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.catalogRenderer(catalog.Entries()))
			return err
		},
	}

	cmd.Flags().BoolVar(&selectorList, "selector", false, "Include the in-call selector options (off, auto)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
