package toml

import "fmt"

const currentPreferencesSchemaVersion = 1

type preferencesFileSchema struct {
	Version     int                   `toml:"version"`
	UpdatedAt   string                `toml:"updated_at,omitempty"`
	Session     sessionSchema         `toml:"session"`
	Translation translationPrefSchema `toml:"translation"`
	Link        linkSchema            `toml:"link"`
	Room        roomSchema            `toml:"room"`
	Log         logSchema             `toml:"log"`
}

func (s *preferencesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentPreferencesSchemaVersion
	}
}

func (s preferencesFileSchema) validateVersion() error {
	if s.Version > currentPreferencesSchemaVersion {
		return fmt.Errorf("unsupported preferences schema version %d (current %d)", s.Version, currentPreferencesSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Type string `toml:"type,omitempty"`
}

type translationPrefSchema struct {
	Enabled       bool   `toml:"enabled"`
	MyLanguage    string `toml:"my_language,omitempty"`
	OtherLanguage string `toml:"other_language,omitempty"`
}

type linkSchema struct {
	BaseURL string `toml:"base_url,omitempty"`
}

type roomSchema struct {
	IDLength int `toml:"id_length,omitempty"`
}

type logSchema struct {
	Level string `toml:"level,omitempty"`
}
