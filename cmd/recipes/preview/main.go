package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-recipes/cmd/recipes/internal/bootstrap"
	"github.com/goliatone/go-recipes/internal/render"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "recipes", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		language   = flag.String("language", "", "Language recorded on loaded documents (defaults to config)")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
		commonmark = flag.Bool("commonmark", false, "Use the full CommonMark pipeline instead of the recipe card renderer")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	opts := bootstrap.Options{
		ContentDir:      *contentDir,
		Pattern:         *pattern,
		Recursive:       true,
		DefaultLanguage: *language,
		MarkdownEnabled: true,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	if module == nil || module.Markdown == nil {
		log.Fatalf("markdown service not configured; ensure Features.Markdown is enabled")
	}

	ctx := context.Background()

	doc, err := module.Markdown.Load(ctx, *filePath, interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load recipe document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nLanguage: %s\nChecksum: %x\n\n", doc.FilePath, doc.Language, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	switch {
	case !*renderHTML:
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	case *commonmark:
		html, err := module.Markdown.Render(ctx, doc.Body, interfaces.ParseOptions{})
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	default:
		// Recipe cards use the constrained renderer so the preview matches
		// what share pages emit.
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", render.RenderMarkdown(string(doc.Body)))
	}
}
