package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/units"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// Service implements interfaces.MarkdownService: loading recipe files,
// rendering them, and importing them into the catalog.
type Service struct {
	loader    *Loader
	parser    interfaces.MarkdownParser
	catalog   *catalog.Service
	converter *units.Converter
	logger    interfaces.Logger
}

// ServiceConfig wires the dependencies of the markdown service.
type ServiceConfig struct {
	FS              fs.FS
	BasePath        string
	DefaultLanguage string
	Parser          interfaces.MarkdownParser
	Catalog         *catalog.Service
	Logger          interfaces.Logger
}

// NewService constructs a markdown service. A nil parser falls back to the
// goldmark defaults.
func NewService(cfg ServiceConfig) *Service {
	parser := cfg.Parser
	if parser == nil {
		parser = NewGoldmarkParser(interfaces.ParseOptions{})
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		loader: NewLoader(cfg.FS, LoaderConfig{
			BasePath:        cfg.BasePath,
			DefaultLanguage: cfg.DefaultLanguage,
		}),
		parser:    parser,
		catalog:   cfg.Catalog,
		converter: units.New(),
		logger:    logger,
	}
}

// Load reads and parses a single recipe document.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, path, LoadParams{Pattern: opts.Pattern})
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// LoadDirectory discovers and parses recipe documents under dir.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	recursive := opts.Recursive
	results, err := s.loader.LoadDirectory(ctx, dir, LoadParams{
		Pattern:   opts.Pattern,
		Recursive: &recursive,
	})
	if err != nil {
		return nil, err
	}
	docs := make([]*interfaces.Document, len(results))
	for i, result := range results {
		docs[i] = result.Document
	}
	return docs, nil
}

// Render converts Markdown into HTML.
func (s *Service) Render(_ context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return s.parser.ParseWithOptions(markdown, opts)
}

// Import converts one parsed document into a catalog recipe. Draft documents
// are skipped. Measurements are converted at most once, here.
func (s *Service) Import(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	result := &interfaces.ImportResult{}
	s.importDocument(ctx, doc, opts, result)
	return result, nil
}

// ImportDirectory imports every recipe document under dir.
func (s *Service) ImportDirectory(ctx context.Context, dir string, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	results, err := s.loader.LoadDirectory(ctx, dir, LoadParams{})
	if err != nil {
		return nil, err
	}

	out := &interfaces.ImportResult{}
	for _, loaded := range results {
		s.importDocument(ctx, loaded.Document, opts, out)
	}
	return out, nil
}

func (s *Service) importDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, result *interfaces.ImportResult) {
	if doc == nil {
		result.Errors = append(result.Errors, fmt.Errorf("markdown import: nil document"))
		return
	}

	meta := doc.FrontMatter
	slug := strings.TrimSpace(meta.Slug)
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		result.Errors = append(result.Errors, fmt.Errorf("markdown import %s: title is required", doc.FilePath))
		return
	}
	if meta.Draft {
		result.SkippedSlugs = append(result.SkippedSlugs, slugOrTitle(slug, title))
		return
	}

	content := strings.TrimSpace(string(doc.Body))
	ingredients := append([]string(nil), meta.Ingredients...)
	if len(ingredients) == 0 {
		ingredients = extractSection(content, "ingredients")
	}
	instructions := extractSection(content, "instructions")

	if opts.ConvertUnits {
		content = s.converter.ConvertText(content)
		for i, line := range ingredients {
			ingredients[i] = s.converter.ConvertText(line)
		}
		for i, line := range instructions {
			instructions[i] = s.converter.ConvertText(line)
		}
	}

	if opts.DryRun {
		result.SkippedSlugs = append(result.SkippedSlugs, slugOrTitle(slug, title))
		return
	}

	req := catalog.CreateRecipeRequest{
		Slug:         slug,
		Title:        title,
		Content:      content,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepMinutes:  meta.PrepMinutes,
		CookMinutes:  meta.CookMinutes,
		TotalMinutes: meta.TotalMinutes,
		Servings:     meta.Servings,
		SourceLang:   meta.Language,
		Tags:         meta.Tags,
	}
	if meta.Author != "" {
		author := meta.Author
		req.Author = &author
	}
	if meta.SourceURL != "" {
		source := meta.SourceURL
		req.SourceURL = &source
	}
	if meta.ImageURL != "" {
		image := meta.ImageURL
		req.ImageURL = &image
	}

	created, err := s.catalog.Create(ctx, req)
	if err == nil {
		result.CreatedSlugs = append(result.CreatedSlugs, created.Slug)
		s.logger.Info("recipe imported from file", "slug", created.Slug, "path", doc.FilePath)
		return
	}

	if !opts.UpdateExisting {
		result.Errors = append(result.Errors, fmt.Errorf("markdown import %s: %w", doc.FilePath, err))
		return
	}

	existing, lookupErr := s.catalog.GetBySlug(ctx, slugOrTitle(slug, title))
	if lookupErr != nil {
		result.Errors = append(result.Errors, fmt.Errorf("markdown import %s: %w", doc.FilePath, err))
		return
	}

	updated, updateErr := s.catalog.Update(ctx, catalog.UpdateRecipeRequest{
		ID:           existing.ID,
		Title:        &title,
		Content:      &content,
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepMinutes:  &req.PrepMinutes,
		CookMinutes:  &req.CookMinutes,
		TotalMinutes: &req.TotalMinutes,
		Author:       req.Author,
		SourceURL:    req.SourceURL,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
	})
	if updateErr != nil {
		result.Errors = append(result.Errors, fmt.Errorf("markdown import %s: %w", doc.FilePath, updateErr))
		return
	}
	result.UpdatedSlugs = append(result.UpdatedSlugs, updated.Slug)
	s.logger.Info("recipe updated from file", "slug", updated.Slug, "path", doc.FilePath)
}

func slugOrTitle(slug, title string) string {
	if slug != "" {
		return slug
	}
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}

// extractSection pulls the list items out of a "## <name>" section: lines
// starting with a dash or bullet for unordered sections, or "1." style
// numbering for ordered ones.
func extractSection(content, name string) []string {
	lines := strings.Split(content, "\n")
	var out []string
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			heading := strings.ToLower(strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
			inSection = heading == name
			continue
		}
		if !inSection || trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "- "):
			out = append(out, strings.TrimSpace(trimmed[2:]))
		case strings.HasPrefix(trimmed, "• "):
			out = append(out, strings.TrimSpace(strings.TrimPrefix(trimmed, "• ")))
		case startsWithNumber(trimmed):
			out = append(out, trimmed)
		}
	}
	return out
}

func startsWithNumber(line string) bool {
	idx := strings.Index(line, ".")
	if idx <= 0 {
		return false
	}
	for _, r := range line[:idx] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
