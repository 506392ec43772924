package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName         = "config"
	configType         = "toml"
	envPrefix          = "NIROGYA"
	preferencesPathKey = "preferences.path"
	prefsFileMode      = 0o600
	prefsDirMode       = 0o700
	prefsConfigDir     = ".nirogya"
	prefsConfigFile    = "preferences.toml"
	tempFilePattern    = ".preferences-*.toml.tmp"
)

// Keys that may be overridden from config.toml or NIROGYA_* environment variables.
const (
	overrideSessionType         = "session.type"
	overrideTranslationEnabled  = "translation.enabled"
	overrideTranslationMyLang   = "translation.my_language"
	overrideTranslationOtherLng = "translation.other_language"
	overrideBaseURL             = "link.base_url"
	overrideRoomIDLength        = "room.id_length"
	overrideLogLevel            = "log.level"
)

var overrideKeys = []string{
	overrideSessionType,
	overrideTranslationEnabled,
	overrideTranslationMyLang,
	overrideTranslationOtherLng,
	overrideBaseURL,
	overrideRoomIDLength,
	overrideLogLevel,
}

type PreferencesRepository struct {
	cfg             *viper.Viper
	preferencesPath string
	mu              *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PreferencesRepository = (*PreferencesRepository)(nil)

func NewPreferencesRepository(cfg *viper.Viper) (*PreferencesRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, prefsConfigDir, prefsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, prefsConfigDir))
	cfg.SetDefault(preferencesPathKey, defaultPath)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range append([]string{preferencesPathKey}, overrideKeys...) {
		if err := cfg.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	preferencesPath := cfg.GetString(preferencesPathKey)
	if preferencesPath == "" {
		return nil, errors.New("preferences path is empty")
	}
	preferencesPath, err = normalizePath(preferencesPath)
	if err != nil {
		return nil, err
	}

	return &PreferencesRepository{cfg: cfg, preferencesPath: preferencesPath, mu: lockForPath(preferencesPath)}, nil
}

func (r *PreferencesRepository) Path() string {
	return r.preferencesPath
}

// Load returns stored preferences layered over the defaults, with config.toml
// and environment overrides applied last.
func (r *PreferencesRepository) Load(ctx context.Context) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := fromSchema(file)
	if err := r.applyOverrides(&prefs); err != nil {
		return domain.Preferences{}, err
	}

	return prefs, nil
}

func (r *PreferencesRepository) applyOverrides(prefs *domain.Preferences) error {
	if r.cfg.IsSet(overrideSessionType) {
		sessionType, err := domain.ParseSessionType(r.cfg.GetString(overrideSessionType))
		if err != nil {
			return fmt.Errorf("override %s: %w", overrideSessionType, err)
		}
		prefs.SessionType = sessionType
	}
	if r.cfg.IsSet(overrideTranslationEnabled) {
		prefs.Translation.Enabled = r.cfg.GetBool(overrideTranslationEnabled)
	}
	if v := r.cfg.GetString(overrideTranslationMyLang); v != "" {
		prefs.Translation.MyLanguage = domain.CanonicalLanguageCode(v)
	}
	if v := r.cfg.GetString(overrideTranslationOtherLng); v != "" {
		prefs.Translation.OtherLanguage = domain.CanonicalLanguageCode(v)
	}
	if v := r.cfg.GetString(overrideBaseURL); v != "" {
		prefs.BaseURL = v
	}
	if r.cfg.IsSet(overrideRoomIDLength) {
		prefs.RoomIDLength = r.cfg.GetInt(overrideRoomIDLength)
	}
	if v := r.cfg.GetString(overrideLogLevel); v != "" {
		prefs.LogLevel = v
	}

	return nil
}

func (r *PreferencesRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(toSchema(prefs))
}

func (r *PreferencesRepository) readSchema() (preferencesFileSchema, error) {
	data, err := os.ReadFile(r.preferencesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := preferencesFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return preferencesFileSchema{}, fmt.Errorf("read preferences file: %w", err)
	}

	var file preferencesFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return preferencesFileSchema{}, fmt.Errorf("decode preferences file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return preferencesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve preferences path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *PreferencesRepository) writeSchema(file preferencesFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.preferencesPath), prefsDirMode); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode preferences file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.preferencesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp preferences file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp preferences file: %w", err)
	}

	if err := tempFile.Chmod(prefsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp preferences file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp preferences file: %w", err)
	}

	if err := os.Rename(tempName, r.preferencesPath); err != nil {
		return fmt.Errorf("replace preferences file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.preferencesPath, prefsFileMode); err != nil {
		return fmt.Errorf("chmod preferences file: %w", err)
	}

	return nil
}

func toSchema(prefs domain.Preferences) preferencesFileSchema {
	return preferencesFileSchema{
		Version:   currentPreferencesSchemaVersion,
		UpdatedAt: formatTime(prefs.UpdatedAt),
		Session:   sessionSchema{Type: string(prefs.SessionType)},
		Translation: translationPrefSchema{
			Enabled:       prefs.Translation.Enabled,
			MyLanguage:    string(prefs.Translation.MyLanguage),
			OtherLanguage: string(prefs.Translation.OtherLanguage),
		},
		Link: linkSchema{BaseURL: prefs.BaseURL},
		Room: roomSchema{IDLength: prefs.RoomIDLength},
		Log:  logSchema{Level: prefs.LogLevel},
	}
}

// fromSchema fills any field missing from the file with its default.
func fromSchema(file preferencesFileSchema) domain.Preferences {
	prefs := domain.DefaultPreferences()

	if file.Session.Type != "" {
		prefs.SessionType = domain.SessionType(file.Session.Type)
	}
	prefs.Translation.Enabled = file.Translation.Enabled
	if file.Translation.MyLanguage != "" {
		prefs.Translation.MyLanguage = domain.LanguageCode(file.Translation.MyLanguage)
	}
	if file.Translation.OtherLanguage != "" {
		prefs.Translation.OtherLanguage = domain.LanguageCode(file.Translation.OtherLanguage)
	}
	if file.Link.BaseURL != "" {
		prefs.BaseURL = file.Link.BaseURL
	}
	if file.Room.IDLength != 0 {
		prefs.RoomIDLength = file.Room.IDLength
	}
	if file.Log.Level != "" {
		prefs.LogLevel = file.Log.Level
	}
	prefs.UpdatedAt = parseTime(file.UpdatedAt)

	return prefs
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
