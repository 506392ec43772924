package cmd

import (
	"fmt"

	"github.com/bnema/nirogya-cli/internal/adapters/render/selector"
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSelectorCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selector",
		Short: "Show in-call language selector status",
	}

	cmd.AddCommand(
		newSelectorShowCmd(app),
		newSelectorWatchCmd(app),
	)

	return cmd
}

func newSelectorShowCmd(app *app) *cobra.Command {
	var language string
	var listening bool
	var engineError string
	var label string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a language selector for the given status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := domain.NewLanguageSelectorState()
			state.Select(domain.CanonicalLanguageCode(language))
			state.IsListening = listening
			state.Error = engineError

			if !state.Recognized() {
				app.logger.WithField("language", state.SelectedLanguage).
					WithError(domain.ErrUnrecognizedLanguageCode).
					Warn("rendering selector with unknown language")
			}

			rendered, err := app.selectorRenderer(state, selector.RenderOptions{Label: label, ShowErrorDetail: true})
			if err != nil {
				return fmt.Errorf("render selector: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&language, "lang", string(domain.LanguageOff), "Selected language code")
	cmd.Flags().BoolVar(&listening, "listening", false, "Engine is actively listening")
	cmd.Flags().StringVar(&engineError, "error", "", "Engine error message")
	cmd.Flags().StringVar(&label, "label", domain.DefaultSelectorLabel, "Selector label")

	return cmd
}

func newSelectorWatchCmd(app *app) *cobra.Command {
	var feedURL string
	var slot string
	var language string
	var label string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a translation engine status feed and re-render on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelectorWatch(cmd.Context(), cmd.OutOrStdout(), app, selectorWatchOptions{
				feedURL:  feedURL,
				slot:     slot,
				language: domain.CanonicalLanguageCode(language),
				render:   selector.RenderOptions{Label: label, ShowErrorDetail: true},
			})
		},
	}

	cmd.Flags().StringVar(&feedURL, "feed", "", "Engine status websocket URL (ws:// or wss://)")
	cmd.Flags().StringVar(&slot, "slot", "me", "Slot for events that do not name one")
	cmd.Flags().StringVar(&language, "lang", string(domain.LanguageAuto), "Language selected for the default slot")
	cmd.Flags().StringVar(&label, "label", domain.DefaultSelectorLabel, "Selector label")
	_ = cmd.MarkFlagRequired("feed")

	return cmd
}
