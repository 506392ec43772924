package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Destination is what the navigator receives once an intent resolves.
type Destination struct {
	SessionType SessionType       `json:"sessionType"`
	RoomID      RoomID            `json:"roomId"`
	Translation TranslationConfig `json:"translation"`
}

// Namespace is "/room/" for doctor rooms and "/room/onlyai/" for AI rooms.
func (d Destination) Namespace() string {
	if d.SessionType == SessionTypeAI {
		return RoomLinkMarker + aiNamespaceSegment + "/"
	}

	return RoomLinkMarker
}

// Path renders the navigator path. The room identifier is not escaped.
func (d Destination) Path() string {
	return d.Namespace() + string(d.RoomID) + encodeQuery(d.Translation.Encode())
}

func (d Destination) String() string {
	return d.Path()
}

// Link prefixes Path with baseURL to produce a shareable link.
func (d Destination) Link(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + d.Path()
}

// ParseDestination reads a path or absolute link produced by Path or Link.
//
// A doctor room whose identifier itself starts with "onlyai/" cannot be told
// apart from an AI room and parses as the latter.
func ParseDestination(raw string) (Destination, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Destination{}, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	_, rest, found := strings.Cut(u.Path, RoomLinkMarker)
	if !found {
		return Destination{}, fmt.Errorf("%w: missing %q in %q", ErrInvalidDestination, RoomLinkMarker, raw)
	}

	sessionType := SessionTypeDoctor
	if id, ok := strings.CutPrefix(rest, aiNamespaceSegment+"/"); ok {
		sessionType = SessionTypeAI
		rest = id
	}
	if rest == "" {
		return Destination{}, fmt.Errorf("%w: %w", ErrInvalidDestination, ErrEmptyRoomIdentifier)
	}

	return Destination{
		SessionType: sessionType,
		RoomID:      RoomID(rest),
		Translation: DecodeTranslation(u.Query()),
	}, nil
}
