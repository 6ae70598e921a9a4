package recipescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	importURLMessageType       = "recipes.importer.import_url"
	importDirectoryMessageType = "recipes.markdown.import_directory"
	translateRecipeMessageType = "recipes.translate.recipe"
)

// ImportURLCommand fetches a recipe page, extracts its structured data, and
// stores the result in the catalog. Options map directly onto
// importer.Options so callers control conversion and overwrite behaviour.
type ImportURLCommand struct {
	// URL is the recipe page to scrape.
	URL string `json:"url"`
	// ConvertUnits rewrites imperial measurements to metric during import.
	ConvertUnits bool `json:"convert_units,omitempty"`
	// DryRun parses and formats without persisting anything.
	DryRun bool `json:"dry_run,omitempty"`
	// UpdateExisting replaces a recipe whose slug already exists.
	UpdateExisting bool `json:"update_existing,omitempty"`
	// Tags are attached to the created recipe.
	Tags []string `json:"tags,omitempty"`
}

// Type implements command.Message.
func (ImportURLCommand) Type() string { return importURLMessageType }

// Validate ensures the URL is present before handlers execute.
func (cmd ImportURLCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.URL, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("recipes.importer.import_url.url_required", "url is required")
			}
			return nil
		})),
	)
}

// ImportDirectoryCommand triggers a filesystem walk for Markdown recipe
// documents under the provided Directory. The command mirrors
// markdown.Service ImportDirectory semantics.
type ImportDirectoryCommand struct {
	// Directory selects the filesystem path to load Markdown files from.
	Directory string `json:"directory"`
	// ConvertUnits rewrites imperial measurements to metric during import.
	ConvertUnits bool `json:"convert_units,omitempty"`
	// DryRun toggles preview mode to collect import results without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
	// UpdateExisting overwrites existing catalog records when files have changed.
	UpdateExisting bool `json:"update_existing,omitempty"`
}

// Type implements command.Message.
func (ImportDirectoryCommand) Type() string { return importDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ImportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("recipes.markdown.import_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// TranslateRecipeCommand requests an AI translation of the identified recipe
// into the target language and stores the resulting translation alongside
// the original.
type TranslateRecipeCommand struct {
	// RecipeID identifies the catalog recipe to translate.
	RecipeID uuid.UUID `json:"recipe_id"`
	// LanguageCode selects the target language (catalog language code).
	LanguageCode string `json:"language_code"`
}

// Type implements command.Message.
func (TranslateRecipeCommand) Type() string { return translateRecipeMessageType }

// Validate ensures recipe and language references are present.
func (cmd TranslateRecipeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.RecipeID, validation.By(func(any) error {
			if cmd.RecipeID == uuid.Nil {
				return validation.NewError("recipes.translate.recipe.id_required", "recipe id is required")
			}
			return nil
		})),
		validation.Field(&cmd.LanguageCode, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("recipes.translate.recipe.language_required", "language code is required")
			}
			return nil
		})),
	)
}
