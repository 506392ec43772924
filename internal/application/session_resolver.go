package application

import (
	"fmt"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionResolver turns entry-screen events into a destination.
//
// Apply is the whole state machine: intents move from collecting to
// confirming_translation (only when translation is on) and finally to
// resolved. A room identifier is generated only on the transition to resolved.
type SessionResolver struct {
	generator ports.RoomIDGenerator
	catalog   domain.LanguageCatalog
	logger    logrus.FieldLogger
}

func NewSessionResolver(generator ports.RoomIDGenerator, logger logrus.FieldLogger) *SessionResolver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SessionResolver{
		generator: generator,
		catalog:   domain.InitiationCatalog,
		logger:    logger,
	}
}

// NewIntent starts a fresh intent seeded from prefs.
func (r *SessionResolver) NewIntent(prefs domain.Preferences) domain.SessionIntent {
	sessionType := prefs.SessionType
	if !sessionType.Valid() {
		sessionType = domain.SessionTypeDoctor
	}
	myLanguage := prefs.Translation.MyLanguage
	if myLanguage == "" {
		myLanguage = domain.DefaultMyLanguage
	}
	otherLanguage := prefs.Translation.OtherLanguage
	if otherLanguage == "" {
		otherLanguage = domain.DefaultOtherLanguage
	}

	return domain.SessionIntent{
		ID:                uuid.NewString(),
		SessionType:       sessionType,
		EnableTranslation: prefs.Translation.Enabled,
		MyLanguage:        myLanguage,
		OtherLanguage:     otherLanguage,
		Phase:             domain.PhaseCollecting,
	}
}

// Apply returns the next intent and what the host should do with it. On error
// the intent is returned unchanged so the user can correct input and retry.
func (r *SessionResolver) Apply(intent domain.SessionIntent, event Event) (domain.SessionIntent, Outcome, error) {
	if intent.Resolved() {
		return intent, Outcome{}, domain.ErrIntentResolved
	}
	if intent.Phase == "" {
		intent.Phase = domain.PhaseCollecting
	}

	next := intent
	switch ev := event.(type) {
	case SelectSessionType:
		if !ev.SessionType.Valid() {
			return intent, Outcome{}, fmt.Errorf("%w: %q", domain.ErrUnknownSessionType, ev.SessionType)
		}
		next.SessionType = ev.SessionType
	case ToggleTranslation:
		next.EnableTranslation = ev.Enabled
		if !ev.Enabled {
			next.Phase = domain.PhaseCollecting
			next.Confirmed = false
		}
	case SelectMyLanguage:
		next.MyLanguage = ev.Code
	case SelectOtherLanguage:
		next.OtherLanguage = ev.Code
	case EnterRoomInput:
		next.RoomInput = ev.Text
	case CreateRoom, JoinRoom:
		return r.commit(intent, event)
	default:
		return intent, Outcome{}, fmt.Errorf("unsupported event %T", event)
	}

	return next, Outcome{Kind: OutcomeUpdated}, nil
}

func (r *SessionResolver) commit(intent domain.SessionIntent, event Event) (domain.SessionIntent, Outcome, error) {
	log := r.logger.WithFields(logrus.Fields{
		"intent_id":    intent.ID,
		"phase":        intent.Phase,
		"session_type": intent.SessionType,
		"event":        event.eventName(),
	})

	next := intent
	if next.EnableTranslation && !next.Confirmed {
		if next.Phase == domain.PhaseCollecting {
			next.Phase = domain.PhaseConfirmingTranslation
			log.Debug("translation setup needs confirmation")
			return next, Outcome{Kind: OutcomeNeedsConfirmation}, nil
		}
		next.Confirmed = true
	}

	translation := next.Translation()
	if err := translation.Validate(r.catalog); err != nil {
		return intent, Outcome{}, fmt.Errorf("validate translation: %w", err)
	}

	var roomID domain.RoomID
	switch event.(type) {
	case CreateRoom:
		generated, err := r.generator.Generate()
		if err != nil {
			return intent, Outcome{}, fmt.Errorf("generate room id: %w", err)
		}
		roomID = generated
	case JoinRoom:
		normalized, err := domain.NormalizeRoomInput(next.RoomInput)
		if err != nil {
			log.WithError(err).Debug("join rejected")
			return intent, Outcome{}, err
		}
		roomID = normalized
	}

	destination := domain.Destination{
		SessionType: next.SessionType,
		RoomID:      roomID,
		Translation: translation,
	}
	next.Phase = domain.PhaseResolved

	log.WithField("destination", destination.Path()).Info("session intent resolved")
	return next, Outcome{Kind: OutcomeNavigate, Destination: destination}, nil
}
