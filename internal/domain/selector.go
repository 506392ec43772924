package domain

type Badge string

const (
	BadgeReady     Badge = "Ready"
	BadgeListening Badge = "Listening"
	BadgeError     Badge = "Error"
)

// DefaultSelectorLabel prefixes the selector when the host screen gives none.
const DefaultSelectorLabel = "Listen in"

// LanguageSelectorState is the display contract for one participant's
// translation language. SelectedLanguage is set by the user; IsListening and
// Error come from the translation engine.
type LanguageSelectorState struct {
	SelectedLanguage LanguageCode `json:"selectedLanguage"`
	IsListening      bool         `json:"isListening"`
	Error            string       `json:"error,omitempty"`
}

func NewLanguageSelectorState() LanguageSelectorState {
	return LanguageSelectorState{SelectedLanguage: LanguageOff}
}

// Select accepts any code. Unknown codes render the fallback label.
func (s *LanguageSelectorState) Select(code LanguageCode) {
	s.SelectedLanguage = code
}

func (s LanguageSelectorState) Entry() LanguageEntry {
	if entry, ok := SelectorCatalog.Lookup(s.SelectedLanguage); ok {
		return entry
	}

	off, _ := SelectorCatalog.Lookup(LanguageOff)
	return off
}

func (s LanguageSelectorState) Label() string {
	return s.Entry().Label()
}

// Recognized is false when SelectedLanguage is not in the selector catalog.
func (s LanguageSelectorState) Recognized() bool {
	return SelectorCatalog.Contains(s.SelectedLanguage)
}

func (s LanguageSelectorState) ShowBadge() bool {
	return s.SelectedLanguage != LanguageOff
}

func (s LanguageSelectorState) Badge() Badge {
	switch {
	case s.Error != "":
		return BadgeError
	case s.IsListening:
		return BadgeListening
	default:
		return BadgeReady
	}
}
