package application

import "github.com/bnema/nirogya-cli/internal/domain"

// Event is a discrete user action on the entry screen.
type Event interface {
	eventName() string
}

type SelectSessionType struct {
	SessionType domain.SessionType
}

type ToggleTranslation struct {
	Enabled bool
}

type SelectMyLanguage struct {
	Code domain.LanguageCode
}

type SelectOtherLanguage struct {
	Code domain.LanguageCode
}

type EnterRoomInput struct {
	Text string
}

type CreateRoom struct{}

type JoinRoom struct{}

func (SelectSessionType) eventName() string   { return "select_session_type" }
func (ToggleTranslation) eventName() string   { return "toggle_translation" }
func (SelectMyLanguage) eventName() string    { return "select_my_language" }
func (SelectOtherLanguage) eventName() string { return "select_other_language" }
func (EnterRoomInput) eventName() string      { return "enter_room_input" }
func (CreateRoom) eventName() string          { return "create_room" }
func (JoinRoom) eventName() string            { return "join_room" }

type OutcomeKind string

const (
	OutcomeUpdated           OutcomeKind = "updated"
	OutcomeNeedsConfirmation OutcomeKind = "needs_confirmation"
	OutcomeNavigate          OutcomeKind = "navigate"
)

type Outcome struct {
	Kind        OutcomeKind
	Destination domain.Destination
}
