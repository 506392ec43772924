package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

var ErrConfirmationDeclined = errors.New("translation setup not confirmed")

// ConfirmFunc shows the pending translation setup and reports whether the user accepted it.
type ConfirmFunc func(ctx context.Context, intent domain.SessionIntent) (bool, error)

type StartCommand struct {
	// Events are applied in order before the final CreateRoom or JoinRoom.
	Events []Event
	Join   bool
}

// SessionService drives a SessionResolver for one-shot callers such as the CLI
// and hands the destination to a Navigator.
type SessionService struct {
	resolver  *SessionResolver
	prefs     ports.PreferencesRepository
	navigator ports.Navigator
	logger    logrus.FieldLogger
}

func NewSessionService(resolver *SessionResolver, prefs ports.PreferencesRepository, navigator ports.Navigator, logger logrus.FieldLogger) *SessionService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SessionService{
		resolver:  resolver,
		prefs:     prefs,
		navigator: navigator,
		logger:    logger,
	}
}

func (s *SessionService) Start(ctx context.Context, cmd StartCommand, confirm ConfirmFunc) (domain.Destination, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("load preferences: %w", err)
	}

	intent := s.resolver.NewIntent(prefs)
	for _, event := range cmd.Events {
		intent, _, err = s.resolver.Apply(intent, event)
		if err != nil {
			return domain.Destination{}, err
		}
	}

	var action Event = CreateRoom{}
	if cmd.Join {
		action = JoinRoom{}
	}

	intent, outcome, err := s.resolver.Apply(intent, action)
	if err != nil {
		return domain.Destination{}, err
	}

	if outcome.Kind == OutcomeNeedsConfirmation {
		if confirm == nil {
			return domain.Destination{}, ErrConfirmationDeclined
		}
		ok, err := confirm(ctx, intent)
		if err != nil {
			return domain.Destination{}, fmt.Errorf("confirm translation setup: %w", err)
		}
		if !ok {
			s.logger.WithField("intent_id", intent.ID).Info("translation setup declined, intent abandoned")
			return domain.Destination{}, ErrConfirmationDeclined
		}

		_, outcome, err = s.resolver.Apply(intent, action)
		if err != nil {
			return domain.Destination{}, err
		}
	}

	if outcome.Kind != OutcomeNavigate {
		return domain.Destination{}, fmt.Errorf("unexpected outcome %q", outcome.Kind)
	}

	if err := s.navigator.Navigate(ctx, outcome.Destination); err != nil {
		return domain.Destination{}, fmt.Errorf("navigate to destination: %w", err)
	}

	return outcome.Destination, nil
}
