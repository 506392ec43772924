package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferencesAreValid(t *testing.T) {
	prefs := DefaultPreferences()

	require.NoError(t, prefs.Validate())
	assert.Equal(t, SessionTypeDoctor, prefs.SessionType)
	assert.False(t, prefs.Translation.Enabled)
	assert.Equal(t, LanguageCode("en"), prefs.Translation.MyLanguage)
	assert.Equal(t, LanguageCode("hi"), prefs.Translation.OtherLanguage)
	assert.Equal(t, 6, prefs.RoomIDLength)
}

func TestPreferencesValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Preferences)
		wantErr string
	}{
		{name: "unknown session type", mutate: func(p *Preferences) { p.SessionType = "nurse" }, wantErr: "unknown session type"},
		{name: "short room id", mutate: func(p *Preferences) { p.RoomIDLength = 4 }, wantErr: "at least 6"},
		{name: "relative base url", mutate: func(p *Preferences) { p.BaseURL = "consult.example.org" }, wantErr: "must be absolute"},
		{name: "empty base url allowed", mutate: func(p *Preferences) { p.BaseURL = "" }},
		{name: "unknown language while disabled", mutate: func(p *Preferences) { p.Translation.OtherLanguage = "de" }, wantErr: "unrecognized language code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := DefaultPreferences()
			tt.mutate(&prefs)

			err := prefs.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSessionIntentTranslation(t *testing.T) {
	intent := SessionIntent{MyLanguage: "en", OtherLanguage: "hi"}
	assert.Equal(t, TranslationConfig{}, intent.Translation())

	intent.EnableTranslation = true
	assert.Equal(t, TranslationConfig{Enabled: true, MyLanguage: "en", OtherLanguage: "hi"}, intent.Translation())
}
