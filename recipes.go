package recipes

import (
	"github.com/goliatone/go-recipes/internal/catalog"
	recipescmd "github.com/goliatone/go-recipes/internal/commands/recipes"
	"github.com/goliatone/go-recipes/internal/di"
	"github.com/goliatone/go-recipes/internal/importer"
	"github.com/goliatone/go-recipes/internal/planner"
	"github.com/goliatone/go-recipes/internal/render"
	"github.com/goliatone/go-recipes/internal/settings"
	"github.com/goliatone/go-recipes/internal/share"
	"github.com/goliatone/go-recipes/internal/translate"
	"github.com/goliatone/go-recipes/internal/units"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// CatalogService exports the catalog service for consumers of the recipes package.
type CatalogService = *catalog.Service

// PlannerService exports the weekly meal planner service.
type PlannerService = *planner.Service

// SettingsService exports the runtime settings service.
type SettingsService = *settings.Service

// TranslationService exports the AI translation service.
type TranslationService = *translate.Service

// ImporterService exports the web recipe importer.
type ImporterService = *importer.Service

// MarkdownService exports the Markdown ingestion contract.
type MarkdownService = interfaces.MarkdownService

// ShareResolver exports the share link resolver.
type ShareResolver = *share.URLResolver

// Module represents the top level recipes runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a recipes module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.Catalog()
}

// Planner returns the configured weekly planner service.
func (m *Module) Planner() PlannerService {
	return m.container.Planner()
}

// Settings returns the configured settings service.
func (m *Module) Settings() SettingsService {
	return m.container.Settings()
}

// Translations returns the AI translation service, nil when the feature is disabled.
func (m *Module) Translations() TranslationService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Translations()
}

// Importer returns the web importer service, nil when the feature is disabled.
func (m *Module) Importer() ImporterService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Importer()
}

// Markdown returns the markdown service when configured.
func (m *Module) Markdown() MarkdownService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Markdown()
}

// Share returns the share link resolver.
func (m *Module) Share() ShareResolver {
	return m.container.ShareResolver()
}

// Units returns a measurement converter applying the module's imperial to
// metric rules.
func (m *Module) Units() *units.Converter {
	return units.New()
}

// Render converts recipe Markdown into display markup using the constrained
// single-pass renderer used by share pages and recipe cards.
func (m *Module) Render(markdown string) string {
	return render.RenderMarkdown(markdown)
}

// RegisterCommands wires command handlers for the enabled services into the
// supplied registry.
func (m *Module) RegisterCommands(reg recipescmd.CommandRegistry, opts ...recipescmd.Option) (*recipescmd.HandlerSet, error) {
	return m.container.RegisterCommands(reg, opts...)
}
