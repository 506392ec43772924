package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type LanguageCode string

const (
	LanguageOff  LanguageCode = "off"
	LanguageAuto LanguageCode = "auto"

	DefaultMyLanguage    LanguageCode = "en"
	DefaultOtherLanguage LanguageCode = "hi"
)

// IsSentinel reports whether the code is one of the selector-only pseudo languages.
func (c LanguageCode) IsSentinel() bool {
	return c == LanguageOff || c == LanguageAuto
}

type LanguageEntry struct {
	Code LanguageCode `json:"code"`
	Name string       `json:"name"`
	Flag string       `json:"flag"`
}

func (e LanguageEntry) Label() string {
	return fmt.Sprintf("%s %s", e.Flag, e.Name)
}

type LanguageCatalog struct {
	entries []LanguageEntry
	index   map[LanguageCode]int
}

func newLanguageCatalog(entries ...LanguageEntry) LanguageCatalog {
	index := make(map[LanguageCode]int, len(entries))
	for i, entry := range entries {
		index[entry.Code] = i
	}

	return LanguageCatalog{entries: entries, index: index}
}

var spokenLanguages = []LanguageEntry{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
	{Code: "or", Name: "Odia", Flag: "🇮🇳"},
	{Code: "kn", Name: "Kannada", Flag: "🇮🇳"},
	{Code: "ta", Name: "Tamil", Flag: "🇮🇳"},
	{Code: "te", Name: "Telugu", Flag: "🇮🇳"},
	{Code: "bn", Name: "Bengali", Flag: "🇮🇳"},
	{Code: "mr", Name: "Marathi", Flag: "🇮🇳"},
	{Code: "gu", Name: "Gujarati", Flag: "🇮🇳"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
}

var (
	// InitiationCatalog lists the languages offered when a room is created or joined.
	InitiationCatalog = newLanguageCatalog(spokenLanguages...)

	// SelectorCatalog is used by in-session language selectors and adds the off/auto sentinels.
	SelectorCatalog = newLanguageCatalog(append([]LanguageEntry{
		{Code: LanguageOff, Name: "No Translation", Flag: "🚫"},
		{Code: LanguageAuto, Name: "Auto Detect", Flag: "🔍"},
	}, spokenLanguages...)...)
)

// Entries returns a copy of the catalog in display order.
func (c LanguageCatalog) Entries() []LanguageEntry {
	out := make([]LanguageEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c LanguageCatalog) Len() int {
	return len(c.entries)
}

func (c LanguageCatalog) Contains(code LanguageCode) bool {
	_, ok := c.index[code]
	return ok
}

func (c LanguageCatalog) Lookup(code LanguageCode) (LanguageEntry, bool) {
	i, ok := c.index[code]
	if !ok {
		return LanguageEntry{}, false
	}

	return c.entries[i], true
}

// CanonicalLanguageCode lowercases user input and strips any region or script
// subtag, so "EN-us" and "en_GB" both become "en". Sentinels pass through.
func CanonicalLanguageCode(raw string) LanguageCode {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if code := LanguageCode(trimmed); code.IsSentinel() {
		return code
	}

	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return LanguageCode(trimmed)
	}

	base, _ := tag.Base()
	return LanguageCode(base.String())
}
