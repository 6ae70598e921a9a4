// Package settings persists household-wide preferences: translation targets,
// prompt templates, and the AI provider used for translations.
package settings

import (
	"context"
	"errors"
	"strings"
)

// ErrSettingsNotFound indicates settings have not been persisted yet.
var ErrSettingsNotFound = errors.New("settings: not found")

// ErrDefaultLanguageLocked guards the fallback language from removal.
var ErrDefaultLanguageLocked = errors.New("settings: the default language cannot be removed")

// DefaultLanguage is always present in the language list and cannot be
// removed.
const DefaultLanguage = "English"

// Provider identifies a translation backend.
type Provider string

const (
	ProviderMistral Provider = "mistral"
	ProviderGroq    Provider = "groq"
)

// Settings captures the tunable preferences of the application.
type Settings struct {
	Languages         []string
	TranslationPrompt string
	SystemPrompt      string
	Provider          Provider
	Model             string
	ScrapeCookie      string
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	out := s
	out.Languages = append([]string(nil), s.Languages...)
	return out
}

// HasLanguage reports whether the language is configured, case-insensitively.
func (s Settings) HasLanguage(language string) bool {
	language = strings.TrimSpace(language)
	for _, l := range s.Languages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

// Default returns the factory settings: fifteen translation targets, the
// stock prompt templates, and Mistral as the provider.
func Default() Settings {
	return Settings{
		Languages: []string{
			"Arabic",
			"Chinese",
			"Dutch",
			"English",
			"French",
			"German",
			"Italian",
			"Japanese",
			"Korean",
			"Polish",
			"Portuguese",
			"Russian",
			"Spanish",
			"Swedish",
			"Turkish",
		},
		TranslationPrompt: defaultTranslationPrompt,
		SystemPrompt:      defaultSystemPrompt,
		Provider:          ProviderMistral,
		Model:             "open-mistral-nemo",
	}
}

const defaultSystemPrompt = "You are a professional recipe translator. Translate recipes accurately while preserving all formatting and measurements."

const defaultTranslationPrompt = `You are a professional recipe translator specializing in culinary translations. Translate the following recipe to {language}.

**CRITICAL FORMATTING RULES:**
1. For ingredients lists: Use a dash (-) or bullet (•) at the start of EACH ingredient line
2. For instruction steps: Use numbered format (1., 2., 3., etc.) at the start of EACH step
3. Keep ONE blank line between sections (Ingredients, Instructions, etc.)
4. Keep markdown headers (## for sections like "Ingrédients" and "Instructions")

**Translation Guidelines:**
5. Translate ALL text naturally and idiomatically in {language}
6. Keep ALL numbers and measurements in parentheses EXACTLY as shown (already converted to metric)
7. Translate cooking terms accurately (sauté, blanch, fold, etc.)
8. Use proper culinary vocabulary in {language}

**Example Format:**
## Ingrédients

- First ingredient here
- Second ingredient here
- Third ingredient here

## Instructions

1. First step of instructions here.
2. Second step here.
3. Third step here.

**Important:** Provide ONLY the translated recipe. No preamble, no explanations.

---

{recipe_text}

---

Translated recipe:`

// Repository persists settings and emits change notifications.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
	Delete(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}

// ChangeType enumerates settings change events.
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

// ChangeEvent reports settings mutations to subscribers.
type ChangeEvent struct {
	Type     ChangeType
	Settings Settings
}

func newChangeEvent(changeType ChangeType, settings Settings) ChangeEvent {
	return ChangeEvent{
		Type:     changeType,
		Settings: settings,
	}
}
