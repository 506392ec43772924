package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/nirogya-cli/internal/adapters/navigator/printer"
	"github.com/bnema/nirogya-cli/internal/application"
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/spf13/cobra"
)

type roomFlags struct {
	sessionType   string
	translate     bool
	myLanguage    string
	otherLanguage string
	yes           bool
	link          bool
	asJSON        bool
}

func newRoomCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Create, join, or inspect consultation rooms",
	}

	cmd.AddCommand(
		newRoomCreateCmd(app),
		newRoomJoinCmd(app),
		newRoomInspectCmd(),
	)

	return cmd
}

func newRoomCreateCmd(app *app) *cobra.Command {
	flags := &roomFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new room and print its destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoomStart(cmd, app, flags, false, "")
		},
	}
	bindRoomFlags(cmd, flags)

	return cmd
}

func newRoomJoinCmd(app *app) *cobra.Command {
	flags := &roomFlags{}

	cmd := &cobra.Command{
		Use:   "join [room-id-or-link]",
		Short: "Join an existing room by identifier or shared link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runRoomStart(cmd, app, flags, true, input)
		},
	}
	bindRoomFlags(cmd, flags)

	return cmd
}

func bindRoomFlags(cmd *cobra.Command, flags *roomFlags) {
	cmd.Flags().StringVar(&flags.sessionType, "type", "", "Session type: doctor or ai (default: from preferences)")
	cmd.Flags().BoolVar(&flags.translate, "translate", false, "Enable live translation")
	cmd.Flags().StringVar(&flags.myLanguage, "my-lang", "", "Language you speak")
	cmd.Flags().StringVar(&flags.otherLanguage, "other-lang", "", "Language of the other participant")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Confirm the translation setup without prompting")
	cmd.Flags().BoolVar(&flags.link, "link", false, "Print a shareable link instead of a path")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Render JSON output")
}

// roomEvents turns explicitly set flags into resolver events; unset flags keep preference values.
func roomEvents(cmd *cobra.Command, flags *roomFlags, join bool, input string) ([]application.Event, error) {
	var events []application.Event

	if cmd.Flags().Changed("type") {
		sessionType, err := domain.ParseSessionType(flags.sessionType)
		if err != nil {
			return nil, err
		}
		events = append(events, application.SelectSessionType{SessionType: sessionType})
	}
	if cmd.Flags().Changed("translate") {
		events = append(events, application.ToggleTranslation{Enabled: flags.translate})
	}
	if cmd.Flags().Changed("my-lang") {
		events = append(events, application.SelectMyLanguage{Code: domain.CanonicalLanguageCode(flags.myLanguage)})
	}
	if cmd.Flags().Changed("other-lang") {
		events = append(events, application.SelectOtherLanguage{Code: domain.CanonicalLanguageCode(flags.otherLanguage)})
	}
	if join {
		events = append(events, application.EnterRoomInput{Text: input})
	}

	return events, nil
}

func runRoomStart(cmd *cobra.Command, app *app, flags *roomFlags, join bool, input string) error {
	if flags.link && flags.asJSON {
		return errors.New("--link and --json cannot be combined")
	}

	events, err := roomEvents(cmd, flags, join, input)
	if err != nil {
		return err
	}

	format := printer.FormatPath
	switch {
	case flags.asJSON:
		format = printer.FormatJSON
	case flags.link:
		format = printer.FormatLink
	}

	service, err := app.sessionService(cmd.Context(), cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}

	confirm := promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
	if flags.yes {
		confirm = func(context.Context, domain.SessionIntent) (bool, error) { return true, nil }
	}

	_, err = service.Start(cmd.Context(), application.StartCommand{Events: events, Join: join}, confirm)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, application.ErrConfirmationDeclined):
		_, werr := fmt.Fprintln(cmd.ErrOrStderr(), "Translation setup not confirmed. No room was opened.")
		return werr
	case errors.Is(err, domain.ErrEmptyRoomIdentifier):
		return errors.New(domain.EmptyRoomIdentifierMessage)
	default:
		return err
	}
}

func promptConfirm(in io.Reader, out io.Writer) application.ConfirmFunc {
	return func(ctx context.Context, intent domain.SessionIntent) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		translation := intent.Translation()
		my, _ := domain.InitiationCatalog.Lookup(translation.MyLanguage)
		other, _ := domain.InitiationCatalog.Lookup(translation.OtherLanguage)

		if _, err := fmt.Fprintf(out, "%s with live translation\n  you speak:  %s\n  they speak: %s\nConfirm translation setup? [y/N] ",
			intent.SessionType.Label(), languageDisplay(my, translation.MyLanguage), languageDisplay(other, translation.OtherLanguage)); err != nil {
			return false, err
		}

		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

func languageDisplay(entry domain.LanguageEntry, code domain.LanguageCode) string {
	if entry.Code == "" {
		return string(code)
	}
	return entry.Label()
}

func newRoomInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <path-or-link>",
		Short: "Decode a room path or link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, err := domain.ParseDestination(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(destination)
			}

			return writeDestinationSummary(cmd.OutOrStdout(), destination)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeDestinationSummary(out io.Writer, destination domain.Destination) error {
	translation := "off"
	if destination.Translation.Enabled {
		translation = fmt.Sprintf("on (%s -> %s)", destination.Translation.MyLanguage, destination.Translation.OtherLanguage)
	}

	_, err := fmt.Fprintf(out, "type: %s\nroom: %s\ntranslation: %s\npath: %s\n",
		destination.SessionType.Label(), destination.RoomID, translation, destination.Path())
	return err
}
