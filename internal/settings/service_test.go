package settings_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/goliatone/go-recipes/internal/settings"
)

func TestGetFallsBackToDefaults(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())

	current, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(current.Languages) != 15 {
		t.Fatalf("expected 15 default languages, got %d", len(current.Languages))
	}
	if !current.HasLanguage("English") {
		t.Fatal("expected English in defaults")
	}
	if current.Provider != settings.ProviderMistral {
		t.Fatalf("expected mistral default provider, got %s", current.Provider)
	}
	if current.Model != "open-mistral-nemo" {
		t.Fatalf("expected default model, got %q", current.Model)
	}
}

func TestAddLanguageSortsAndDeduplicates(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())
	ctx := context.Background()

	updated, err := svc.AddLanguage(ctx, "Basque")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !updated.HasLanguage("Basque") {
		t.Fatal("expected Basque added")
	}
	if !sort.StringsAreSorted(updated.Languages) {
		t.Fatalf("expected sorted languages, got %v", updated.Languages)
	}

	again, err := svc.AddLanguage(ctx, "basque")
	if err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if len(again.Languages) != len(updated.Languages) {
		t.Fatalf("expected no duplicate entry, got %v", again.Languages)
	}
}

func TestRemoveLanguageProtectsDefault(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.RemoveLanguage(ctx, "English"); !errors.Is(err, settings.ErrDefaultLanguageLocked) {
		t.Fatalf("expected ErrDefaultLanguageLocked, got %v", err)
	}

	updated, err := svc.RemoveLanguage(ctx, "Turkish")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if updated.HasLanguage("Turkish") {
		t.Fatal("expected Turkish removed")
	}
}

func TestUpdateProviderValidates(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.UpdateProvider(ctx, "openai", ""); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	updated, err := svc.UpdateProvider(ctx, settings.ProviderGroq, "llama-3.3-70b-versatile")
	if err != nil {
		t.Fatalf("update provider: %v", err)
	}
	if updated.Provider != settings.ProviderGroq {
		t.Fatalf("expected groq provider, got %s", updated.Provider)
	}
	if updated.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("expected updated model, got %q", updated.Model)
	}
}

func TestUpdatePromptsKeepsCurrentWhenEmpty(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())
	ctx := context.Background()

	updated, err := svc.UpdatePrompts(ctx, "translate to {language}: {recipe_text}", "")
	if err != nil {
		t.Fatalf("update prompts: %v", err)
	}
	if updated.TranslationPrompt != "translate to {language}: {recipe_text}" {
		t.Fatalf("expected replaced translation prompt, got %q", updated.TranslationPrompt)
	}
	if updated.SystemPrompt != settings.Default().SystemPrompt {
		t.Fatal("expected system prompt untouched")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	svc := settings.NewService(settings.NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.AddLanguage(ctx, "Basque"); err != nil {
		t.Fatalf("add: %v", err)
	}
	reset, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if reset.HasLanguage("Basque") {
		t.Fatal("expected reset to drop extra languages")
	}
}

func TestSubscribeReceivesChange(t *testing.T) {
	repo := settings.NewMemoryRepository()
	svc := settings.NewService(repo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if _, err := svc.AddLanguage(ctx, "Basque"); err != nil {
		t.Fatalf("add: %v", err)
	}

	select {
	case evt := <-events:
		if evt.Type != settings.ChangeCreated {
			t.Fatalf("expected created event on first persist, got %s", evt.Type)
		}
	default:
		t.Fatal("expected a change event")
	}
}
