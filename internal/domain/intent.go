package domain

type IntentPhase string

const (
	PhaseCollecting            IntentPhase = "collecting"
	PhaseConfirmingTranslation IntentPhase = "confirming_translation"
	PhaseResolved              IntentPhase = "resolved"
)

// SessionIntent is the transient state of one visit to the entry screen.
type SessionIntent struct {
	ID                string
	SessionType       SessionType
	RoomInput         string
	EnableTranslation bool
	MyLanguage        LanguageCode
	OtherLanguage     LanguageCode
	Phase             IntentPhase
	// Confirmed is set once the user has passed the translation confirmation step.
	Confirmed bool
}

func (i SessionIntent) Translation() TranslationConfig {
	if !i.EnableTranslation {
		return TranslationConfig{}
	}

	return TranslationConfig{
		Enabled:       true,
		MyLanguage:    i.MyLanguage,
		OtherLanguage: i.OtherLanguage,
	}
}

func (i SessionIntent) Resolved() bool {
	return i.Phase == PhaseResolved
}
