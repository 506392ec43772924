package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL      = "http://localhost:5173"
	DefaultRoomIDLength = 6
	MinRoomIDLength     = 6
)

// Preferences seed every new session intent and control how links are rendered.
type Preferences struct {
	SessionType  SessionType
	Translation  TranslationConfig
	BaseURL      string
	RoomIDLength int
	LogLevel     string
	UpdatedAt    time.Time
}

func DefaultPreferences() Preferences {
	return Preferences{
		SessionType: SessionTypeDoctor,
		Translation: TranslationConfig{
			MyLanguage:    DefaultMyLanguage,
			OtherLanguage: DefaultOtherLanguage,
		},
		BaseURL:      DefaultBaseURL,
		RoomIDLength: DefaultRoomIDLength,
		LogLevel:     "warn",
	}
}

func (p Preferences) Validate() error {
	if !p.SessionType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSessionType, p.SessionType)
	}
	if p.RoomIDLength < MinRoomIDLength {
		return fmt.Errorf("room id length must be at least %d, got %d", MinRoomIDLength, p.RoomIDLength)
	}
	if strings.TrimSpace(p.BaseURL) != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q must be absolute", p.BaseURL)
		}
	}

	// Languages are checked even while translation is off.
	pair := p.Translation
	pair.Enabled = true
	return pair.Validate(InitiationCatalog)
}
