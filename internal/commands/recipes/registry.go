package recipescmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-recipes/internal/commands"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the recipe command handlers produced by RegisterRecipeCommands.
type HandlerSet struct {
	ImportURL       *ImportURLHandler
	ImportDirectory *ImportDirectoryHandler
	Translate       *TranslateRecipeHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	importURLOpts       []commands.HandlerOption[ImportURLCommand]
	importDirectoryOpts []commands.HandlerOption[ImportDirectoryCommand]
	translateOpts       []commands.HandlerOption[TranslateRecipeCommand]
}

// WithImportURLHandlerOptions forwards options to the ImportURLHandler constructor.
func WithImportURLHandlerOptions(opts ...commands.HandlerOption[ImportURLCommand]) Option {
	return func(cfg *options) {
		cfg.importURLOpts = append(cfg.importURLOpts, opts...)
	}
}

// WithImportDirectoryHandlerOptions forwards options to the ImportDirectoryHandler constructor.
func WithImportDirectoryHandlerOptions(opts ...commands.HandlerOption[ImportDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.importDirectoryOpts = append(cfg.importDirectoryOpts, opts...)
	}
}

// WithTranslateHandlerOptions forwards options to the TranslateRecipeHandler constructor.
func WithTranslateHandlerOptions(opts ...commands.HandlerOption[TranslateRecipeCommand]) Option {
	return func(cfg *options) {
		cfg.translateOpts = append(cfg.translateOpts, opts...)
	}
}

// Services bundles the dependencies the recipe command handlers delegate to.
type Services struct {
	Importer   URLImporter
	Markdown   interfaces.MarkdownService
	Translator RecipeTranslator
}

// RegisterRecipeCommands builds recipe command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations (dispatcher, cron) as needed. Handlers whose service dependency is
// nil are skipped.
func RegisterRecipeCommands(reg CommandRegistry, services Services, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if services.Importer == nil && services.Markdown == nil && services.Translator == nil {
		return nil, errors.New("recipe command registration: no services provided")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "recipes")

	set := &HandlerSet{}

	if services.Importer != nil {
		set.ImportURL = NewImportURLHandler(services.Importer, logger, cfg.importURLOpts...)
	}
	if services.Markdown != nil {
		set.ImportDirectory = NewImportDirectoryHandler(services.Markdown, logger, cfg.importDirectoryOpts...)
	}
	if services.Translator != nil {
		set.Translate = NewTranslateRecipeHandler(services.Translator, logger, cfg.translateOpts...)
	}

	if reg != nil {
		if set.ImportURL != nil {
			if err := reg.RegisterCommand(set.ImportURL); err != nil {
				return nil, err
			}
		}
		if set.ImportDirectory != nil {
			if err := reg.RegisterCommand(set.ImportDirectory); err != nil {
				return nil, err
			}
		}
		if set.Translate != nil {
			if err := reg.RegisterCommand(set.Translate); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

// RegisterImportCron wires the provided directory import handler into a cron registrar using
// the supplied command configuration and message payload. The handler is executed with a
// background context.
func RegisterImportCron(reg CronRegistrar, handler *ImportDirectoryHandler, cfg command.HandlerConfig, msg ImportDirectoryCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
