package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/nirogya-cli/internal/adapters/navigator/printer"
	"github.com/bnema/nirogya-cli/internal/adapters/render/selector"
	tomlrepo "github.com/bnema/nirogya-cli/internal/adapters/repo/toml"
	"github.com/bnema/nirogya-cli/internal/adapters/roomid/nanoid"
	"github.com/bnema/nirogya-cli/internal/application"
	"github.com/bnema/nirogya-cli/internal/domain"
	"github.com/bnema/nirogya-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	logger           *logrus.Logger
	prefsRepo        ports.PreferencesRepository
	preferences      *application.PreferencesService
	selectorRenderer func(domain.LanguageSelectorState, selector.RenderOptions) (string, error)
	boardRenderer    func([]selector.Slot, selector.RenderOptions) (string, error)
	catalogRenderer  func([]domain.LanguageEntry) string
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewPreferencesRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire preferences repository: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &app{
		logger:           logger,
		prefsRepo:        repo,
		preferences:      application.NewPreferencesService(repo, ports.SystemClock{}),
		selectorRenderer: selector.Render,
		boardRenderer:    selector.RenderBoard,
		catalogRenderer:  selector.RenderCatalog,
	}, nil
}

// sessionService wires a resolver whose generator honours the stored room id length.
func (a *app) sessionService(ctx context.Context, out io.Writer, format printer.Format) (*application.SessionService, error) {
	prefs, err := a.preferences.Get(ctx)
	if err != nil {
		return nil, err
	}

	generator, err := nanoid.NewGenerator(prefs.RoomIDLength)
	if err != nil {
		return nil, fmt.Errorf("wire room id generator: %w", err)
	}

	resolver := application.NewSessionResolver(generator, a.logger)
	navigator := printer.New(out, prefs.BaseURL, format)

	return application.NewSessionService(resolver, a.prefsRepo, navigator, a.logger), nil
}

// configureLogging resolves the level from the flag first, then stored preferences.
func (a *app) configureLogging(ctx context.Context, out io.Writer, flagLevel string) error {
	a.logger.SetOutput(out)

	level := flagLevel
	if level == "" {
		if prefs, err := a.preferences.Get(ctx); err == nil {
			level = prefs.LogLevel
		}
	}
	if level == "" {
		return nil
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	a.logger.SetLevel(parsed)

	return nil
}
