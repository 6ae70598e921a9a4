package logging

import (
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

const (
	rootModule      = "recipes"
	catalogModule   = "recipes.catalog"
	plannerModule   = "recipes.planner"
	translateModule = "recipes.translate"
	importerModule  = "recipes.importer"
	markdownModule  = "recipes.markdown"
	settingsModule  = "recipes.settings"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for the recipe catalog.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// PlannerLogger returns the logger namespace reserved for the weekly planner.
func PlannerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, plannerModule)
}

// TranslateLogger returns the logger namespace reserved for translation runs.
func TranslateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translateModule)
}

// ImporterLogger returns the logger namespace reserved for recipe imports.
func ImporterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, importerModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown workflows.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// SettingsLogger returns the logger namespace reserved for settings changes.
func SettingsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, settingsModule)
}
