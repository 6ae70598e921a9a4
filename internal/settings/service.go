package settings

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// Service layers defaults and language bookkeeping over a Repository. A
// missing settings row resolves to Default() rather than an error.
type Service struct {
	repo   Repository
	logger interfaces.Logger
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

func NewService(repo Repository, opts ...ServiceOption) *Service {
	svc := &Service{
		repo:   repo,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Get returns the current settings, falling back to defaults when nothing
// has been persisted yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return Default(), nil
		}
		return Settings{}, err
	}
	return withDefaults(current), nil
}

// Update replaces the stored settings wholesale.
func (s *Service) Update(ctx context.Context, settings Settings) (Settings, error) {
	return s.repo.Upsert(ctx, withDefaults(settings))
}

// Reset restores factory settings.
func (s *Service) Reset(ctx context.Context) (Settings, error) {
	return s.repo.Upsert(ctx, Default())
}

// Languages returns the configured translation targets.
func (s *Service) Languages(ctx context.Context) ([]string, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return current.Languages, nil
}

// AddLanguage registers a new translation target, keeping the list sorted.
// Adding an existing language is a no-op.
func (s *Service) AddLanguage(ctx context.Context, language string) (Settings, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return Settings{}, errors.New("settings: language is required")
	}

	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if current.HasLanguage(language) {
		return current, nil
	}

	current.Languages = append(current.Languages, language)
	sort.Strings(current.Languages)

	updated, err := s.repo.Upsert(ctx, current)
	if err != nil {
		return Settings{}, err
	}
	s.logger.Info("language added", "language", language)
	return updated, nil
}

// RemoveLanguage drops a translation target. The default language cannot be
// removed.
func (s *Service) RemoveLanguage(ctx context.Context, language string) (Settings, error) {
	language = strings.TrimSpace(language)
	if strings.EqualFold(language, DefaultLanguage) {
		return Settings{}, ErrDefaultLanguageLocked
	}

	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}

	kept := current.Languages[:0:0]
	for _, l := range current.Languages {
		if !strings.EqualFold(l, language) {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(current.Languages) {
		return current, nil
	}
	current.Languages = kept

	updated, err := s.repo.Upsert(ctx, current)
	if err != nil {
		return Settings{}, err
	}
	s.logger.Info("language removed", "language", language)
	return updated, nil
}

// UpdatePrompts replaces the prompt templates. Empty arguments keep the
// current value.
func (s *Service) UpdatePrompts(ctx context.Context, translationPrompt, systemPrompt string) (Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if strings.TrimSpace(translationPrompt) != "" {
		current.TranslationPrompt = translationPrompt
	}
	if strings.TrimSpace(systemPrompt) != "" {
		current.SystemPrompt = systemPrompt
	}
	return s.repo.Upsert(ctx, current)
}

// UpdateProvider switches the translation backend and model.
func (s *Service) UpdateProvider(ctx context.Context, provider Provider, model string) (Settings, error) {
	switch provider {
	case ProviderMistral, ProviderGroq:
	default:
		return Settings{}, errors.New("settings: unknown provider " + string(provider))
	}

	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	current.Provider = provider
	if strings.TrimSpace(model) != "" {
		current.Model = model
	}
	updated, err := s.repo.Upsert(ctx, current)
	if err != nil {
		return Settings{}, err
	}
	s.logger.Info("provider updated", "provider", provider, "model", updated.Model)
	return updated, nil
}

// withDefaults fills missing fields from Default so a partially persisted
// row never drops prompts or languages.
func withDefaults(s Settings) Settings {
	def := Default()
	if len(s.Languages) == 0 {
		s.Languages = def.Languages
	}
	if !s.HasLanguage(DefaultLanguage) {
		s.Languages = append(s.Languages, DefaultLanguage)
		sort.Strings(s.Languages)
	}
	if strings.TrimSpace(s.TranslationPrompt) == "" {
		s.TranslationPrompt = def.TranslationPrompt
	}
	if strings.TrimSpace(s.SystemPrompt) == "" {
		s.SystemPrompt = def.SystemPrompt
	}
	if s.Provider == "" {
		s.Provider = def.Provider
	}
	if strings.TrimSpace(s.Model) == "" {
		s.Model = def.Model
	}
	return s
}
