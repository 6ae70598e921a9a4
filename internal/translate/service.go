package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/settings"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	"github.com/google/uuid"
)

// ErrProviderNotConfigured indicates no API key was supplied for the
// provider selected in settings.
var ErrProviderNotConfigured = errors.New("translate: provider not configured")

// TranslatorFactory resolves a Translator for the configured provider.
type TranslatorFactory interface {
	Translator(provider settings.Provider, model string) (interfaces.Translator, error)
}

// ClientFactory builds chat clients from per-provider API keys.
type ClientFactory struct {
	MistralAPIKey string
	GroqAPIKey    string

	// Options are applied to every constructed client, after the model
	// override. Used by tests to point clients at a local server.
	Options []Option
}

// Translator returns a client for the provider, or ErrProviderNotConfigured
// when its API key is missing.
func (f ClientFactory) Translator(provider settings.Provider, model string) (interfaces.Translator, error) {
	opts := append([]Option{WithModel(model)}, f.Options...)
	switch provider {
	case settings.ProviderMistral:
		if strings.TrimSpace(f.MistralAPIKey) == "" {
			return nil, fmt.Errorf("%w: mistral", ErrProviderNotConfigured)
		}
		return NewMistralClient(f.MistralAPIKey, opts...), nil
	case settings.ProviderGroq:
		if strings.TrimSpace(f.GroqAPIKey) == "" {
			return nil, fmt.Errorf("%w: groq", ErrProviderNotConfigured)
		}
		return NewGroqClient(f.GroqAPIKey, opts...), nil
	default:
		return nil, fmt.Errorf("translate: unknown provider %q", provider)
	}
}

// Service translates stored recipes and persists the results as catalog
// translations.
type Service struct {
	catalog  *catalog.Service
	settings *settings.Service
	factory  TranslatorFactory
	logger   interfaces.Logger
}

// ServiceOption customizes Service construction.
type ServiceOption func(*Service)

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(catalogSvc *catalog.Service, settingsSvc *settings.Service, factory TranslatorFactory, opts ...ServiceOption) *Service {
	svc := &Service{
		catalog:  catalogSvc,
		settings: settingsSvc,
		factory:  factory,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// TranslateRecipe translates a recipe into the target language and stores
// the result, replacing any previous translation for that language.
func (s *Service) TranslateRecipe(ctx context.Context, recipeID uuid.UUID, languageCode string) (*catalog.RecipeTranslation, error) {
	recipe, err := s.catalog.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	languages, err := s.catalog.AvailableLanguages(ctx)
	if err != nil {
		return nil, err
	}
	var target *catalog.Language
	for _, lang := range languages {
		if strings.EqualFold(lang.Code, languageCode) {
			target = lang
			break
		}
	}
	if target == nil {
		return nil, &catalog.UnknownLanguageError{RecipeID: recipeID, Code: languageCode}
	}

	prefs, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	translator, err := s.factory.Translator(prefs.Provider, prefs.Model)
	if err != nil {
		return nil, err
	}

	recipeText := "# " + recipe.Title + "\n\n" + recipe.Content
	prompt := BuildPrompt(prefs.TranslationPrompt, target.Display, recipeText)

	translated, err := translator.Translate(ctx, interfaces.TranslateRequest{
		Text:         prompt,
		Language:     target.Display,
		SystemPrompt: prefs.SystemPrompt,
		Model:        prefs.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("translate: recipe %s to %s: %w", recipe.Slug, target.Code, err)
	}

	title, content := splitTranslated(translated, recipe.Title)

	stored, err := s.catalog.UpsertTranslation(ctx, catalog.UpsertTranslationRequest{
		RecipeID:     recipe.ID,
		LanguageCode: target.Code,
		Title:        title,
		Content:      content,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("recipe translated",
		"slug", recipe.Slug,
		"language", target.Code,
		"provider", prefs.Provider,
	)
	return stored, nil
}

// Ping verifies the configured provider is reachable with the stored
// credentials.
func (s *Service) Ping(ctx context.Context) error {
	prefs, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	translator, err := s.factory.Translator(prefs.Provider, prefs.Model)
	if err != nil {
		return err
	}
	return translator.Ping(ctx)
}

// splitTranslated peels a leading markdown h1 off the translated text to use
// as the translated title. Without one the original title is kept.
func splitTranslated(translated, fallbackTitle string) (string, string) {
	trimmed := strings.TrimSpace(translated)
	if !strings.HasPrefix(trimmed, "# ") {
		return fallbackTitle, trimmed
	}
	line, rest, found := strings.Cut(trimmed, "\n")
	title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
	if title == "" {
		return fallbackTitle, trimmed
	}
	if !found {
		return title, ""
	}
	return title, strings.TrimSpace(rest)
}
