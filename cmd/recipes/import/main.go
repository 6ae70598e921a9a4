package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-recipes/cmd/recipes/internal/bootstrap"
	recipescmd "github.com/goliatone/go-recipes/internal/commands/recipes"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("recipes import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("recipes-import", flag.ExitOnError)
	pageURL := fs.String("url", "", "Recipe page URL to scrape and import")
	directory := fs.String("directory", "", "Markdown directory to import, relative to the content root")
	contentDir := fs.String("content-dir", "recipes", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	language := fs.String("language", "", "Source language recorded on imported recipes (defaults to config)")
	convertUnits := fs.Bool("convert-units", true, "Convert imperial measurements to metric during import")
	updateExisting := fs.Bool("update-existing", false, "Overwrite recipes that were already imported")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting recipes")
	tags := fs.String("tags", "", "Comma separated tags applied to imported recipes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fromURL := *pageURL != ""
	if !fromURL && *directory == "" {
		return fmt.Errorf("either -url or -directory is required")
	}
	if fromURL && *directory != "" {
		return fmt.Errorf("-url and -directory are mutually exclusive")
	}

	opts := bootstrap.Options{
		ContentDir:      *contentDir,
		Pattern:         *pattern,
		Recursive:       true,
		DefaultLanguage: *language,
		MarkdownEnabled: !fromURL,
		ImporterEnabled: fromURL,
		ConvertUnits:    *convertUnits,
		UpdateExisting:  *updateExisting,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	if fromURL {
		if module == nil || module.Importer == nil {
			return fmt.Errorf("importer service not configured; ensure Features.Importer is enabled")
		}
		handler := recipescmd.NewImportURLHandler(module.Importer, module.Logger)
		cmd := recipescmd.ImportURLCommand{
			URL:            *pageURL,
			ConvertUnits:   *convertUnits,
			DryRun:         *dryRun,
			UpdateExisting: *updateExisting,
			Tags:           bootstrap.SplitList(*tags),
		}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute import command: %w", err)
		}
		fmt.Fprintln(os.Stdout, "recipe import command executed successfully")
		return nil
	}

	if module == nil || module.Markdown == nil {
		return fmt.Errorf("markdown service not configured; ensure Features.Markdown is enabled")
	}
	handler := recipescmd.NewImportDirectoryHandler(module.Markdown, module.Logger)
	cmd := recipescmd.ImportDirectoryCommand{
		Directory:      *directory,
		ConvertUnits:   *convertUnits,
		DryRun:         *dryRun,
		UpdateExisting: *updateExisting,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "markdown import command executed successfully")

	return nil
}
