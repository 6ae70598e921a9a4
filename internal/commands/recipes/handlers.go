package recipescmd

import (
	"context"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/commands"
	"github.com/goliatone/go-recipes/internal/importer"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const (
	importURLOperation       = "importer.import_url"
	importDirectoryOperation = "markdown.import_directory"
	translateOperation       = "translate.recipe"
)

// URLImporter is the slice of importer.Service the URL import handler needs.
type URLImporter interface {
	ImportFromURL(ctx context.Context, pageURL string, opts importer.Options) (*catalog.Recipe, error)
}

// RecipeTranslator is the slice of translate.Service the translation handler needs.
type RecipeTranslator interface {
	TranslateRecipe(ctx context.Context, recipeID uuid.UUID, languageCode string) (*catalog.RecipeTranslation, error)
}

var (
	_ command.Commander[ImportURLCommand]       = (*ImportURLHandler)(nil)
	_ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)
	_ command.Commander[TranslateRecipeCommand] = (*TranslateRecipeHandler)(nil)
)

// ImportURLHandler scrapes and stores recipes from the web via the shared command foundation.
type ImportURLHandler struct {
	inner *commands.Handler[ImportURLCommand]
}

// NewImportURLHandler creates a handler bound to the supplied importer service.
func NewImportURLHandler(service URLImporter, logger interfaces.Logger, opts ...commands.HandlerOption[ImportURLCommand]) *ImportURLHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportURLCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		recipe, err := service.ImportFromURL(ctx, msg.URL, importer.Options{
			ConvertUnits:   msg.ConvertUnits,
			DryRun:         msg.DryRun,
			UpdateExisting: msg.UpdateExisting,
			Tags:           msg.Tags,
		})
		if err != nil {
			return err
		}
		if recipe != nil {
			logging.WithFields(baseLogger, map[string]any{
				"slug":    recipe.Slug,
				"dry_run": msg.DryRun,
			}).Info("recipes.command.import_url.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportURLCommand]{
		commands.WithLogger[ImportURLCommand](baseLogger),
		commands.WithOperation[ImportURLCommand](importURLOperation),
		commands.WithMessageFields(func(msg ImportURLCommand) map[string]any {
			fields := map[string]any{
				"url": msg.URL,
			}
			if msg.ConvertUnits {
				fields["convert_units"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportURLCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportURLHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportURLCommand].
func (h *ImportURLHandler) Execute(ctx context.Context, msg ImportURLCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ImportDirectoryHandler orchestrates Markdown directory imports via the shared command foundation.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
}

// NewImportDirectoryHandler creates a handler bound to the supplied Markdown service.
func NewImportDirectoryHandler(service interfaces.MarkdownService, logger interfaces.Logger, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ImportDirectory(ctx, msg.Directory, interfaces.ImportOptions{
			ConvertUnits:   msg.ConvertUnits,
			DryRun:         msg.DryRun,
			UpdateExisting: msg.UpdateExisting,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created_count": len(result.CreatedSlugs),
				"updated_count": len(result.UpdatedSlugs),
				"skipped_count": len(result.SkippedSlugs),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("recipes.command.import_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](baseLogger),
		commands.WithOperation[ImportDirectoryCommand](importDirectoryOperation),
		commands.WithMessageFields(func(msg ImportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.ConvertUnits {
				fields["convert_units"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.UpdateExisting {
				fields["update_existing"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ImportDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportDirectoryCommand].
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// TranslateRecipeHandler runs AI recipe translations via the shared command foundation.
type TranslateRecipeHandler struct {
	inner *commands.Handler[TranslateRecipeCommand]
}

// NewTranslateRecipeHandler creates a handler bound to the supplied translation service.
func NewTranslateRecipeHandler(service RecipeTranslator, logger interfaces.Logger, opts ...commands.HandlerOption[TranslateRecipeCommand]) *TranslateRecipeHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg TranslateRecipeCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		translation, err := service.TranslateRecipe(ctx, msg.RecipeID, msg.LanguageCode)
		if err != nil {
			return err
		}
		if translation != nil {
			logging.WithFields(baseLogger, map[string]any{
				"recipe_id": msg.RecipeID,
				"language":  msg.LanguageCode,
			}).Info("recipes.command.translate.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[TranslateRecipeCommand]{
		commands.WithLogger[TranslateRecipeCommand](baseLogger),
		commands.WithOperation[TranslateRecipeCommand](translateOperation),
		commands.WithMessageFields(func(msg TranslateRecipeCommand) map[string]any {
			return map[string]any{
				"recipe_id": msg.RecipeID,
				"language":  msg.LanguageCode,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[TranslateRecipeCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &TranslateRecipeHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[TranslateRecipeCommand].
func (h *TranslateRecipeHandler) Execute(ctx context.Context, msg TranslateRecipeCommand) error {
	return h.inner.Execute(ctx, msg)
}
