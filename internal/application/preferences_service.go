package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

var ErrUnknownPreferenceKey = errors.New("unknown preference key")

const (
	PrefSessionType           = "session.type"
	PrefTranslationEnabled    = "translation.enabled"
	PrefTranslationMyLanguage = "translation.my_language"
	PrefTranslationOtherLang  = "translation.other_language"
	PrefLinkBaseURL           = "link.base_url"
	PrefRoomIDLength          = "room.id_length"
	PrefLogLevel              = "log.level"
)

// PreferenceKeys lists settable keys in display order.
var PreferenceKeys = []string{
	PrefSessionType,
	PrefTranslationEnabled,
	PrefTranslationMyLanguage,
	PrefTranslationOtherLang,
	PrefLinkBaseURL,
	PrefRoomIDLength,
	PrefLogLevel,
}

type PreferencesService struct {
	repo  ports.PreferencesRepository
	clock ports.Clock
}

func NewPreferencesService(repo ports.PreferencesRepository, clock ports.Clock) *PreferencesService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PreferencesService{repo: repo, clock: clock}
}

func (s *PreferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	return prefs, nil
}

func (s *PreferencesService) Set(ctx context.Context, key, value string) (domain.Preferences, error) {
	prefs, err := s.Get(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	value = strings.TrimSpace(value)
	switch key {
	case PrefSessionType:
		sessionType, err := domain.ParseSessionType(value)
		if err != nil {
			return domain.Preferences{}, err
		}
		prefs.SessionType = sessionType
	case PrefTranslationEnabled:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return domain.Preferences{}, fmt.Errorf("parse %s: %w", key, err)
		}
		prefs.Translation.Enabled = enabled
	case PrefTranslationMyLanguage:
		prefs.Translation.MyLanguage = domain.CanonicalLanguageCode(value)
	case PrefTranslationOtherLang:
		prefs.Translation.OtherLanguage = domain.CanonicalLanguageCode(value)
	case PrefLinkBaseURL:
		prefs.BaseURL = value
	case PrefRoomIDLength:
		length, err := strconv.Atoi(value)
		if err != nil {
			return domain.Preferences{}, fmt.Errorf("parse %s: %w", key, err)
		}
		prefs.RoomIDLength = length
	case PrefLogLevel:
		if _, err := logrus.ParseLevel(value); err != nil {
			return domain.Preferences{}, fmt.Errorf("parse %s: %w", key, err)
		}
		prefs.LogLevel = value
	default:
		return domain.Preferences{}, fmt.Errorf("%w: %q", ErrUnknownPreferenceKey, key)
	}

	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, fmt.Errorf("validate preferences: %w", err)
	}

	prefs.UpdatedAt = s.clock.Now()
	if err := s.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	return prefs, nil
}
