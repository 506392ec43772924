package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *PreferencesRepository {
	t.Helper()

	config := viper.New()
	config.Set("preferences.path", path)

	repo, err := NewPreferencesRepository(config)
	require.NoError(t, err)
	return repo
}

func TestPreferencesRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "preferences.toml"))

	prefs := domain.Preferences{
		SessionType: domain.SessionTypeAI,
		Translation: domain.TranslationConfig{
			Enabled:       true,
			MyLanguage:    "ta",
			OtherLanguage: "fr",
		},
		BaseURL:      "https://consult.example.org",
		RoomIDLength: 8,
		LogLevel:     "debug",
		UpdatedAt:    time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(context.Background(), prefs))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestPreferencesRepositoryMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "preferences.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), got)
}

func TestPreferencesRepositoryPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[translation]",
		"enabled = true",
		"other_language = \"bn\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, path)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionTypeDoctor, got.SessionType)
	assert.True(t, got.Translation.Enabled)
	assert.Equal(t, domain.LanguageCode("en"), got.Translation.MyLanguage)
	assert.Equal(t, domain.LanguageCode("bn"), got.Translation.OtherLanguage)
	assert.Equal(t, domain.DefaultRoomIDLength, got.RoomIDLength)
}

func TestPreferencesRepositoryOverridesWinOverFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	config := viper.New()
	config.Set("preferences.path", path)
	config.Set("link.base_url", "https://override.example.org")
	config.Set("session.type", "AI")

	repo, err := NewPreferencesRepository(config)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultPreferences()))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.org", got.BaseURL)
	assert.Equal(t, domain.SessionTypeAI, got.SessionType)
}

func TestPreferencesRepositoryEnvironmentOverride(t *testing.T) {
	t.Setenv("NIROGYA_LOG_LEVEL", "trace")

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "preferences.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "trace", got.LogLevel)
}

func TestPreferencesRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewPreferencesRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultPreferences()))

	path := filepath.Join(homeDir, ".nirogya", "preferences.toml")
	assert.Equal(t, path, repo.Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPreferencesRepositoryReadsPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	custom := filepath.Join(homeDir, "elsewhere", "prefs.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".nirogya"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".nirogya", "config.toml"),
		[]byte("[preferences]\npath = \""+filepath.ToSlash(custom)+"\"\n"),
		0o600,
	))

	repo, err := NewPreferencesRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, custom, repo.Path())
}

func TestPreferencesRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("session = ["), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode preferences file")
}

func TestPreferencesRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n"), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported preferences schema version")
}

func TestPreferencesRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultPreferences()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[translation]")
}

func TestPreferencesRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "preferences.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.DefaultPreferences())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPreferencesRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const writes = 50
	errCh := make(chan error, writes*2)
	var wg sync.WaitGroup
	for _, repo := range []*PreferencesRepository{repoA, repoB} {
		wg.Add(1)
		go func(repo *PreferencesRepository) {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				errCh <- repo.Save(context.Background(), domain.DefaultPreferences())
			}
		}(repo)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), got)
}

func TestPreferencesRepositoryConfigFileOverridesEveryKey(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".nirogya"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".nirogya", "config.toml"), []byte(strings.Join([]string{
		"[session]",
		"type = \"AI\"",
		"",
		"[translation]",
		"enabled = true",
		"my_language = \"ta\"",
		"other_language = \"fr-FR\"",
		"",
		"[link]",
		"base_url = \"https://clinic.example\"",
		"",
		"[room]",
		"id_length = 8",
		"",
		"[log]",
		"level = \"debug\"",
		"",
	}, "\n")), 0o600))

	repo, err := NewPreferencesRepository(viper.New())
	require.NoError(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionTypeAI, got.SessionType)
	assert.True(t, got.Translation.Enabled)
	assert.Equal(t, domain.LanguageCode("ta"), got.Translation.MyLanguage)
	assert.Equal(t, domain.LanguageCode("fr"), got.Translation.OtherLanguage)
	assert.Equal(t, "https://clinic.example", got.BaseURL)
	assert.Equal(t, 8, got.RoomIDLength)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestPreferencesRepositoryEnvironmentOverridesEveryKey(t *testing.T) {
	t.Setenv("NIROGYA_SESSION_TYPE", "ai")
	t.Setenv("NIROGYA_TRANSLATION_ENABLED", "true")
	t.Setenv("NIROGYA_TRANSLATION_MY_LANGUAGE", "bn")
	t.Setenv("NIROGYA_TRANSLATION_OTHER_LANGUAGE", "fr")
	t.Setenv("NIROGYA_LINK_BASE_URL", "https://env.example")
	t.Setenv("NIROGYA_ROOM_ID_LENGTH", "12")
	t.Setenv("NIROGYA_LOG_LEVEL", "error")

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "preferences.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionTypeAI, got.SessionType)
	assert.True(t, got.Translation.Enabled)
	assert.Equal(t, domain.LanguageCode("bn"), got.Translation.MyLanguage)
	assert.Equal(t, domain.LanguageCode("fr"), got.Translation.OtherLanguage)
	assert.Equal(t, "https://env.example", got.BaseURL)
	assert.Equal(t, 12, got.RoomIDLength)
	assert.Equal(t, "error", got.LogLevel)
}

func TestPreferencesRepositoryEnvironmentCanDisableTranslation(t *testing.T) {
	t.Setenv("NIROGYA_TRANSLATION_ENABLED", "false")

	path := filepath.Join(t.TempDir(), "preferences.toml")
	repo := newTestRepository(t, path)

	stored := domain.DefaultPreferences()
	stored.Translation.Enabled = true
	require.NoError(t, repo.Save(context.Background(), stored))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, got.Translation.Enabled)
}

func TestPreferencesRepositoryRejectsUnknownSessionTypeOverride(t *testing.T) {
	t.Setenv("NIROGYA_SESSION_TYPE", "nurse")

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "preferences.toml"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownSessionType)
	assert.ErrorContains(t, err, "override session.type")
}
