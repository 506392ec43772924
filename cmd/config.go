package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bnema/nirogya-cli/internal/application"
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change stored entry screen defaults",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := app.preferences.Get(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(preferenceValues(prefs))
			}

			values := preferenceValues(prefs)
			for _, key := range application.PreferenceKeys {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, values[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one stored preference",
		Args:      cobra.ExactArgs(2),
		ValidArgs: application.PreferenceKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.preferences.Set(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], preferenceValues(prefs)[args[0]])
			return err
		},
	}
}

func preferenceValues(prefs domain.Preferences) map[string]string {
	return map[string]string{
		application.PrefSessionType:           string(prefs.SessionType),
		application.PrefTranslationEnabled:    strconv.FormatBool(prefs.Translation.Enabled),
		application.PrefTranslationMyLanguage: string(prefs.Translation.MyLanguage),
		application.PrefTranslationOtherLang:  string(prefs.Translation.OtherLanguage),
		application.PrefLinkBaseURL:           prefs.BaseURL,
		application.PrefRoomIDLength:          strconv.Itoa(prefs.RoomIDLength),
		application.PrefLogLevel:              prefs.LogLevel,
	}
}
