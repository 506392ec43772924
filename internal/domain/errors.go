package domain

import "errors"

var (
	ErrEmptyRoomIdentifier      = errors.New("empty room identifier")
	ErrUnrecognizedLanguageCode = errors.New("unrecognized language code")
	ErrUnknownSessionType       = errors.New("unknown session type")
	ErrIntentResolved           = errors.New("session intent already resolved")
	ErrInvalidDestination       = errors.New("invalid destination")
)

// EmptyRoomIdentifierMessage is shown to the user when a join has nothing to join.
const EmptyRoomIdentifierMessage = "Please enter a valid Room ID or link"
