package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across requests; parsing carries no
// per-call state beyond the supplied options.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document represents a recipe Markdown file with parsed metadata and content.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Language     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so sync
	// workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from recipe Markdown files. Fields
// cover the canonical recipe header; the Custom map keeps domain-specific
// values accessible without schema changes.
type FrontMatter struct {
	Title        string         `yaml:"title" json:"title"`
	Slug         string         `yaml:"slug" json:"slug"`
	Servings     int            `yaml:"servings" json:"servings"`
	PrepMinutes  int            `yaml:"prep_minutes" json:"prep_minutes"`
	CookMinutes  int            `yaml:"cook_minutes" json:"cook_minutes"`
	TotalMinutes int            `yaml:"total_minutes" json:"total_minutes"`
	Author       string         `yaml:"author" json:"author"`
	SourceURL    string         `yaml:"source_url" json:"source_url"`
	Language     string         `yaml:"language" json:"language"`
	ImageURL     string         `yaml:"image_url" json:"image_url"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Ingredients  []string       `yaml:"ingredients" json:"ingredients"`
	Date         time.Time      `yaml:"date" json:"date"`
	Draft        bool           `yaml:"draft" json:"draft"`
	Custom       map[string]any `yaml:",inline" json:"custom"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive bool
	Pattern   string
	Parser    ParseOptions
}

// ImportOptions controls how Markdown documents are converted into catalog
// recipes.
type ImportOptions struct {
	// ConvertUnits applies the imperial-to-metric conversion pass exactly once
	// while importing. Already imported recipes are never converted again.
	ConvertUnits bool
	// DryRun collects the would-be changes without persisting anything.
	DryRun bool
	// UpdateExisting overwrites catalog records whose source file changed.
	UpdateExisting bool
}

// ImportResult reports the outcome of an import run, exposing ids so callers
// can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedSlugs []string
	UpdatedSlugs []string
	SkippedSlugs []string
	Errors       []error
}

// MarkdownService exposes the file-centric recipe workflows: loading recipe
// documents from disk, rendering them, and importing them into the catalog.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	Import(ctx context.Context, doc *Document, opts ImportOptions) (*ImportResult, error)
	ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error)
}
