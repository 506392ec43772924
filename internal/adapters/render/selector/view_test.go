package selector

import (
	"strings"
	"testing"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOffHidesBadge(t *testing.T) {
	output, err := Render(domain.NewLanguageSelectorState(), RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Listen in:")
	assert.Contains(t, output, "No Translation")
	assert.NotContains(t, output, "Ready")
	assert.NotContains(t, output, "Listening")
	assert.NotContains(t, output, "Error")
}

func TestRenderBadgePriority(t *testing.T) {
	tests := []struct {
		name  string
		state domain.LanguageSelectorState
		want  string
		not   []string
	}{
		{
			name:  "ready",
			state: domain.LanguageSelectorState{SelectedLanguage: "hi"},
			want:  "● Ready",
			not:   []string{"Listening", "Error"},
		},
		{
			name:  "listening",
			state: domain.LanguageSelectorState{SelectedLanguage: "hi", IsListening: true},
			want:  "● Listening",
			not:   []string{"Ready", "Error"},
		},
		{
			name:  "error wins over listening",
			state: domain.LanguageSelectorState{SelectedLanguage: "hi", IsListening: true, Error: "mic denied"},
			want:  "● Error",
			not:   []string{"Ready", "Listening"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Render(tt.state, RenderOptions{})
			require.NoError(t, err)
			assert.Contains(t, output, "Hindi")
			assert.Contains(t, output, tt.want)
			for _, unwanted := range tt.not {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestRenderUnknownCodeFallsBackAndStillShowsBadge(t *testing.T) {
	output, err := Render(domain.LanguageSelectorState{SelectedLanguage: "xx"}, RenderOptions{Label: "Hear"})

	require.NoError(t, err)
	assert.Contains(t, output, "Hear:")
	assert.Contains(t, output, "No Translation")
	assert.Contains(t, output, "Ready")
}

func TestRenderErrorDetailOnlyWhenRequested(t *testing.T) {
	state := domain.LanguageSelectorState{SelectedLanguage: "ta", Error: "mic denied"}

	plain, err := Render(state, RenderOptions{})
	require.NoError(t, err)
	assert.NotContains(t, plain, "mic denied")

	detailed, err := Render(state, RenderOptions{ShowErrorDetail: true})
	require.NoError(t, err)
	assert.Contains(t, detailed, "(mic denied)")
}

func TestRenderBoard(t *testing.T) {
	output, err := RenderBoard([]Slot{
		{Name: "doctor", State: domain.LanguageSelectorState{SelectedLanguage: "en", IsListening: true}},
		{Name: "patient", State: domain.LanguageSelectorState{SelectedLanguage: "or"}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "participants: 2")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "English")
	assert.Contains(t, output, "Listening")
	assert.Contains(t, output, "patient")
	assert.Contains(t, output, "Odia")
	assert.Contains(t, output, "Ready")
}

func TestRenderBoardEmpty(t *testing.T) {
	output, err := RenderBoard(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "participants: 0")
	assert.Contains(t, output, "No participants yet.")
}

func TestRenderCatalogListsEntriesInOrder(t *testing.T) {
	output := RenderCatalog(domain.SelectorCatalog.Entries())

	assert.Contains(t, output, "CODE")
	assert.Contains(t, output, "No Translation")
	assert.Contains(t, output, "Auto Detect")
	assert.Contains(t, output, "Hindi")
	assert.Less(t, strings.Index(output, "No Translation"), strings.Index(output, "Auto Detect"))
	assert.Less(t, strings.Index(output, "Auto Detect"), strings.Index(output, "English"))
}
