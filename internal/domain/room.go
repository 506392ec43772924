package domain

import (
	"fmt"
	"strings"
)

type SessionType string

const (
	SessionTypeDoctor SessionType = "doctor"
	SessionTypeAI     SessionType = "ai"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeDoctor, SessionTypeAI:
		return true
	default:
		return false
	}
}

func (t SessionType) Label() string {
	switch t {
	case SessionTypeAI:
		return "AI Room"
	case SessionTypeDoctor:
		return "Doctor Room"
	default:
		return string(t)
	}
}

func ParseSessionType(raw string) (SessionType, error) {
	t := SessionType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSessionType, raw)
	}

	return t, nil
}

type RoomID string

const (
	// RoomLinkMarker precedes the room identifier in every shareable link.
	RoomLinkMarker = "/room/"

	aiNamespaceSegment = "onlyai"
)

// NormalizeRoomInput accepts a bare room identifier or a full room link.
//
// Only the first RoomLinkMarker is honoured and everything after it is kept
// verbatim, so an AI room link such as "https://host/room/onlyai/xyz789"
// yields "onlyai/xyz789".
func NormalizeRoomInput(raw string) (RoomID, error) {
	candidate := strings.TrimSpace(raw)
	if _, after, found := strings.Cut(candidate, RoomLinkMarker); found {
		candidate = after
	}

	if candidate == "" {
		return "", ErrEmptyRoomIdentifier
	}

	return RoomID(candidate), nil
}
