package application

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/sirupsen/logrus"
)

// LanguageChangedFunc is called after a user picks a language for a slot.
type LanguageChangedFunc func(slot string, code domain.LanguageCode)

// SelectorBoard owns one LanguageSelectorState per participant slot.
// User selections and engine events may arrive from different goroutines;
// each field is last-write-wins on its own.
type SelectorBoard struct {
	mu        sync.RWMutex
	slots     map[string]domain.LanguageSelectorState
	listeners []LanguageChangedFunc
	logger    logrus.FieldLogger
}

func NewSelectorBoard(logger logrus.FieldLogger) *SelectorBoard {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SelectorBoard{
		slots:  map[string]domain.LanguageSelectorState{},
		logger: logger,
	}
}

func (b *SelectorBoard) OnLanguageChanged(fn LanguageChangedFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Select records a user choice and notifies listeners. Unknown codes are kept as-is.
func (b *SelectorBoard) Select(slot string, code domain.LanguageCode) {
	b.mu.Lock()
	state := b.stateLocked(slot)
	state.Select(code)
	b.slots[slot] = state
	listeners := append([]LanguageChangedFunc(nil), b.listeners...)
	b.mu.Unlock()

	log := b.logger.WithFields(logrus.Fields{"slot": slot, "language": code})
	if !domain.SelectorCatalog.Contains(code) {
		log = log.WithError(domain.ErrUnrecognizedLanguageCode)
	}
	log.Debug("language selector changed")

	for _, fn := range listeners {
		fn(slot, code)
	}
}

// ApplyEngineEvent updates the engine-owned fields of a slot. SelectedLanguage is never touched,
// except that a participant-left event removes the slot entirely.
func (b *SelectorBoard) ApplyEngineEvent(event domain.EngineEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if event.Type == domain.EngineParticipantLeft {
		delete(b.slots, event.Slot)
		b.logger.WithField("slot", event.Slot).Debug("participant left")
		return nil
	}

	state := b.stateLocked(event.Slot)
	switch event.Type {
	case domain.EngineListeningStarted:
		state.IsListening = true
	case domain.EngineListeningStopped:
		state.IsListening = false
	case domain.EngineErrorOccurred:
		state.Error = event.Error
		if state.Error == "" {
			state.Error = "unknown engine error"
		}
	case domain.EngineErrorCleared:
		state.Error = ""
	default:
		return fmt.Errorf("unsupported engine event type %q", event.Type)
	}
	b.slots[event.Slot] = state

	b.logger.WithFields(logrus.Fields{
		"slot":  event.Slot,
		"event": event.Type,
		"badge": state.Badge(),
	}).Debug("engine status applied")

	return nil
}

func (b *SelectorBoard) State(slot string) domain.LanguageSelectorState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stateLocked(slot)
}

// Slots returns slot names in sorted order.
func (b *SelectorBoard) Slots() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.slots))
	for name := range b.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *SelectorBoard) stateLocked(slot string) domain.LanguageSelectorState {
	if state, ok := b.slots[slot]; ok {
		return state
	}
	return domain.NewLanguageSelectorState()
}
