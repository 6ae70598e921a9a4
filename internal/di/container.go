package di

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	recipescmd "github.com/goliatone/go-recipes/internal/commands/recipes"
	"github.com/goliatone/go-recipes/internal/identity"
	"github.com/goliatone/go-recipes/internal/importer"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/logging/gologger"
	"github.com/goliatone/go-recipes/internal/markdown"
	"github.com/goliatone/go-recipes/internal/planner"
	"github.com/goliatone/go-recipes/internal/runtimeconfig"
	"github.com/goliatone/go-recipes/internal/settings"
	"github.com/goliatone/go-recipes/internal/share"
	"github.com/goliatone/go-recipes/internal/translate"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. Without a bun.DB it falls back to
// in-memory repositories so the module stays usable in tests and previews.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	recipeRepo      catalog.RecipeRepository
	languageRepo    catalog.LanguageRepository
	translationRepo catalog.TranslationRepository

	settingsRepo settings.Repository

	planRepo  planner.PlanRepository
	entryRepo planner.EntryRepository

	memoryLanguageRepo *catalog.MemoryLanguageRepository

	routeManager  *urlkit.RouteManager
	shareResolver *share.URLResolver

	markdownFS fs.FS

	loggerProvider interfaces.LoggerProvider

	catalogSvc   *catalog.Service
	settingsSvc  *settings.Service
	plannerSvc   *planner.Service
	importerSvc  *importer.Service
	translateSvc *translate.Service
	markdownSvc  interfaces.MarkdownService
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds persistent storage. Repositories switch from in-memory to
// bun-backed implementations.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMarkdownFS overrides the filesystem used for Markdown ingestion,
// mainly for tests.
func WithMarkdownFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.markdownFS = fsys
	}
}

// WithCatalogService overrides the default catalog service binding.
func WithCatalogService(svc *catalog.Service) Option {
	return func(c *Container) {
		c.catalogSvc = svc
	}
}

// WithSettingsService overrides the default settings service binding.
func WithSettingsService(svc *settings.Service) Option {
	return func(c *Container) {
		c.settingsSvc = svc
	}
}

// WithPlannerService overrides the default planner service binding.
func WithPlannerService(svc *planner.Service) Option {
	return func(c *Container) {
		c.plannerSvc = svc
	}
}

// WithImporterService overrides the default importer service binding.
func WithImporterService(svc *importer.Service) Option {
	return func(c *Container) {
		c.importerSvc = svc
	}
}

// WithTranslateService overrides the default translation service binding.
func WithTranslateService(svc *translate.Service) Option {
	return func(c *Container) {
		c.translateSvc = svc
	}
}

// WithMarkdownService overrides the default markdown service binding.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		c.markdownSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	memoryLanguageRepo := catalog.NewMemoryLanguageRepository()

	c := &Container{
		Config:             cfg,
		cacheTTL:           cacheTTL,
		recipeRepo:         catalog.NewMemoryRecipeRepository(),
		languageRepo:       memoryLanguageRepo,
		translationRepo:    catalog.NewMemoryTranslationRepository(),
		settingsRepo:       settings.NewMemoryRepository(),
		planRepo:           planner.NewMemoryPlanRepository(),
		entryRepo:          planner.NewMemoryEntryRepository(),
		memoryLanguageRepo: memoryLanguageRepo,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.bunDB == nil && strings.EqualFold(strings.TrimSpace(cfg.Storage.Provider), "bun") &&
		strings.TrimSpace(cfg.Storage.DSN) != "" {
		db, err := OpenDatabase(cfg.Storage)
		if err != nil {
			return nil, err
		}
		c.bunDB = db
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureShare()
	c.seedLanguages()

	logger := func(module string) interfaces.Logger {
		return logging.ModuleLogger(c.loggerProvider, "recipes."+module)
	}

	if c.settingsSvc == nil {
		c.settingsSvc = settings.NewService(c.settingsRepo, settings.WithLogger(logger("settings")))
	}

	if c.catalogSvc == nil {
		c.catalogSvc = catalog.NewService(
			c.recipeRepo,
			c.languageRepo,
			c.translationRepo,
			catalog.WithLogger(logger("catalog")),
		)
	}

	if c.plannerSvc == nil {
		c.plannerSvc = planner.NewService(
			c.planRepo,
			c.entryRepo,
			c.catalogSvc,
			planner.WithLogger(logger("planner")),
		)
	}

	if c.importerSvc == nil && c.Config.Features.Importer {
		c.importerSvc = importer.NewService(
			c.catalogSvc,
			c.settingsSvc,
			importer.WithLogger(logger("importer")),
		)
	}

	if c.translateSvc == nil && c.Config.Features.Translation {
		factory := translate.ClientFactory{
			MistralAPIKey: c.Config.Translator.MistralAPIKey,
			GroqAPIKey:    c.Config.Translator.GroqAPIKey,
		}
		if base := strings.TrimSpace(c.Config.Translator.BaseURL); base != "" {
			factory.Options = append(factory.Options, translate.WithBaseURL(base))
		}
		c.translateSvc = translate.NewService(
			c.catalogSvc,
			c.settingsSvc,
			factory,
			translate.WithLogger(logger("translate")),
		)
	}

	if c.markdownSvc == nil && c.Config.Markdown.Enabled {
		fsys := c.markdownFS
		basePath := ""
		if fsys == nil {
			fsys = os.DirFS(c.Config.Markdown.ContentDir)
			basePath = c.Config.Markdown.ContentDir
		}
		c.markdownSvc = markdown.NewService(markdown.ServiceConfig{
			FS:              fsys,
			BasePath:        basePath,
			DefaultLanguage: c.Config.DefaultLanguage,
			Parser: markdown.NewGoldmarkParser(interfaces.ParseOptions{
				Extensions: c.Config.Markdown.Parser.Extensions,
				Sanitize:   c.Config.Markdown.Parser.Sanitize,
				HardWraps:  c.Config.Markdown.Parser.HardWraps,
				SafeMode:   c.Config.Markdown.Parser.SafeMode,
			}),
			Catalog: c.catalogSvc,
			Logger:  logger("markdown"),
		})
	}

	return c, nil
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil {
		return
	}
	if !c.Config.Features.Logger {
		return
	}
	if strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), "gologger") {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err == nil {
			c.loggerProvider = provider
		}
	}
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}

	c.recipeRepo = catalog.NewBunRecipeRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.languageRepo = catalog.NewBunLanguageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.translationRepo = catalog.NewBunTranslationRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)

	c.settingsRepo = settings.NewBunRepository(c.bunDB)

	c.planRepo = planner.NewBunPlanRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.entryRepo = planner.NewBunEntryRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)

	c.memoryLanguageRepo = nil
}

func (c *Container) configureShare() {
	if c.shareResolver != nil {
		return
	}

	shareCfg := c.Config.Share
	var manager *urlkit.RouteManager
	if shareCfg.RouteConfig != nil {
		manager = urlkit.NewRouteManager(shareCfg.RouteConfig)
	}
	c.routeManager = manager

	c.shareResolver = share.NewURLResolver(share.URLResolverOptions{
		Manager:    manager,
		Group:      strings.TrimSpace(shareCfg.URLKit.Group),
		Route:      strings.TrimSpace(shareCfg.URLKit.Route),
		TokenParam: strings.TrimSpace(shareCfg.URLKit.TokenParam),
	})
}

// seedLanguages populates the in-memory language repository from the settings
// defaults so a freshly constructed module can resolve translation targets.
// Bun-backed deployments seed languages through migrations instead.
func (c *Container) seedLanguages() {
	if c.memoryLanguageRepo == nil {
		return
	}

	defaults := settings.Default()
	for _, name := range defaults.Languages {
		display := strings.TrimSpace(name)
		if display == "" {
			continue
		}
		code := LanguageCode(display)
		c.memoryLanguageRepo.Put(&catalog.Language{
			ID:        identity.LanguageUUID(code),
			Code:      code,
			Display:   display,
			IsActive:  true,
			IsDefault: strings.EqualFold(display, c.Config.DefaultLanguage),
		})
	}
}

// Catalog returns the configured catalog service.
func (c *Container) Catalog() *catalog.Service {
	return c.catalogSvc
}

// Settings returns the configured settings service.
func (c *Container) Settings() *settings.Service {
	return c.settingsSvc
}

// Planner returns the configured planner service.
func (c *Container) Planner() *planner.Service {
	return c.plannerSvc
}

// Importer returns the configured importer service, nil when the feature is disabled.
func (c *Container) Importer() *importer.Service {
	return c.importerSvc
}

// Translations returns the configured translation service, nil when the feature is disabled.
func (c *Container) Translations() *translate.Service {
	return c.translateSvc
}

// Markdown returns the configured markdown service, nil when ingestion is disabled.
func (c *Container) Markdown() interfaces.MarkdownService {
	return c.markdownSvc
}

// ShareResolver returns the share URL resolver.
func (c *Container) ShareResolver() *share.URLResolver {
	return c.shareResolver
}

// LoggerProvider exposes the configured logger provider, possibly nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// RegisterCommands wires command handlers for the enabled services into the
// supplied registry. Pass nil to only construct the handler set.
func (c *Container) RegisterCommands(reg recipescmd.CommandRegistry, opts ...recipescmd.Option) (*recipescmd.HandlerSet, error) {
	services := recipescmd.Services{
		Markdown: c.markdownSvc,
	}
	if c.importerSvc != nil {
		services.Importer = c.importerSvc
	}
	if c.translateSvc != nil {
		services.Translator = c.translateSvc
	}
	return recipescmd.RegisterRecipeCommands(reg, services, c.loggerProvider, opts...)
}
