package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrAdvancedCacheRequiresEnabledCache ensures advanced cache builds only when cache is enabled.
var ErrAdvancedCacheRequiresEnabledCache = errors.New("recipes config: advanced cache feature requires cache to be enabled")

// ErrCommandsCronRequiresMarkdown ensures automatic cron wiring only runs when markdown ingestion is enabled.
var ErrCommandsCronRequiresMarkdown = errors.New("recipes config: command cron auto-registration requires markdown to be enabled")
var ErrMarkdownFeatureRequired = errors.New("recipes config: markdown feature must be enabled to configure markdown")
var ErrMarkdownContentDirRequired = errors.New("recipes config: markdown content directory is required when markdown is enabled")
var ErrTranslatorProviderInvalid = errors.New("recipes config: translator provider is invalid")
var ErrTranslatorKeyRequired = errors.New("recipes config: translator api key is required when translation is enabled")
var ErrLoggingProviderRequired = errors.New("recipes config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("recipes config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("recipes config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("recipes config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the recipes module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled         bool
	DefaultLanguage string
	Storage         StorageConfig
	Cache           CacheConfig
	Share           ShareConfig
	Features        Features
	Commands        CommandsConfig
	Markdown        MarkdownConfig
	Importer        ImporterConfig
	Translator      TranslatorConfig
	Logging         LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	DSN      string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// ShareConfig captures routing configuration for share link resolution.
type ShareConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based share link resolver.
type URLKitResolverConfig struct {
	Group      string
	Route      string
	TokenParam string
}

// Features toggles module functionality.
type Features struct {
	Importer      bool
	Translation   bool
	Markdown      bool
	Planner       bool
	AdvancedCache bool
	Logger        bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
	AutoRegisterCron       bool
	ImportCron             string
}

// MarkdownConfig captures filesystem and parser behaviour for Markdown ingestion.
type MarkdownConfig struct {
	Enabled         bool
	ContentDir      string
	Pattern         string
	Recursive       bool
	DefaultLanguage string
	Parser          MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ImporterConfig captures web scraping behaviour.
type ImporterConfig struct {
	ConvertUnits   bool
	UpdateExisting bool
	Timeout        time.Duration
}

// TranslatorConfig captures AI translation provider credentials and defaults.
// Provider and Model are starting values; runtime settings can override them.
type TranslatorConfig struct {
	Provider      string
	Model         string
	MistralAPIKey string
	GroqAPIKey    string
	BaseURL       string
}

// DefaultConfig returns opinionated defaults for an embedded recipes module.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "English",
		Storage: StorageConfig{
			Provider: "bun",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Share: ShareConfig{
			URLKit: URLKitResolverConfig{
				Group:      "share",
				Route:      "recipe",
				TokenParam: "token",
			},
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Markdown: MarkdownConfig{
			ContentDir: "recipes",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Importer: ImporterConfig{
			ConvertUnits: true,
			Timeout:      30 * time.Second,
		},
		Translator: TranslatorConfig{
			Provider: "mistral",
			Model:    "open-mistral-nemo",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Commands.AutoRegisterCron && !cfg.Markdown.Enabled {
		return ErrCommandsCronRequiresMarkdown
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Translation {
		provider := normalizeProvider(cfg.Translator.Provider)
		switch provider {
		case "mistral":
			if strings.TrimSpace(cfg.Translator.MistralAPIKey) == "" {
				return fmt.Errorf("%w: mistral", ErrTranslatorKeyRequired)
			}
		case "groq":
			if strings.TrimSpace(cfg.Translator.GroqAPIKey) == "" {
				return fmt.Errorf("%w: groq", ErrTranslatorKeyRequired)
			}
		default:
			return fmt.Errorf("%w: %s", ErrTranslatorProviderInvalid, provider)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
