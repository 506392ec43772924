package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var translatedDoctorRoom = domain.Destination{
	SessionType: domain.SessionTypeDoctor,
	RoomID:      "V1StGX",
	Translation: domain.TranslationConfig{Enabled: true, MyLanguage: "en", OtherLanguage: "hi"},
}

func TestNavigatorWritesPath(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, New(out, "", "").Navigate(context.Background(), translatedDoctorRoom))
	assert.Equal(t, "/room/V1StGX?translation=true&myLang=en&otherLang=hi\n", out.String())
}

func TestNavigatorWritesLink(t *testing.T) {
	out := &bytes.Buffer{}

	nav := New(out, "https://clinic.example/", FormatLink)
	require.NoError(t, nav.Navigate(context.Background(), domain.Destination{
		SessionType: domain.SessionTypeAI,
		RoomID:      "xyz789",
	}))
	assert.Equal(t, "https://clinic.example/room/onlyai/xyz789\n", out.String())
}

func TestNavigatorLinkWithoutBaseURLFails(t *testing.T) {
	err := New(&bytes.Buffer{}, "", FormatLink).Navigate(context.Background(), translatedDoctorRoom)
	require.Error(t, err)
}

func TestNavigatorWritesJSON(t *testing.T) {
	out := &bytes.Buffer{}

	nav := New(out, "http://localhost:5173", FormatJSON)
	require.NoError(t, nav.Navigate(context.Background(), translatedDoctorRoom))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "doctor", got["sessionType"])
	assert.Equal(t, "V1StGX", got["roomId"])
	assert.Equal(t, "/room/V1StGX?translation=true&myLang=en&otherLang=hi", got["path"])
	assert.Equal(t, "http://localhost:5173/room/V1StGX?translation=true&myLang=en&otherLang=hi", got["link"])
	assert.Equal(t, map[string]any{"enabled": true, "myLanguage": "en", "otherLanguage": "hi"}, got["translation"])
}

func TestNavigatorRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	err := New(out, "", FormatPath).Navigate(ctx, translatedDoctorRoom)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
