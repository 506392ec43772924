package domain

type EngineEventType string

const (
	EngineListeningStarted EngineEventType = "listening-started"
	EngineListeningStopped EngineEventType = "listening-stopped"
	EngineErrorOccurred    EngineEventType = "error"
	EngineErrorCleared     EngineEventType = "error-cleared"
	EngineParticipantLeft  EngineEventType = "participant-left"
)

// EngineEvent is a status notification from the external translation engine.
type EngineEvent struct {
	Type  EngineEventType `json:"type"`
	Slot  string          `json:"slot"`
	Error string          `json:"error,omitempty"`
}
