package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-recipes/pkg/interfaces"
)

// ParseFrontMatter extracts recipe metadata and the Markdown body from the
// provided source bytes.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from a file path, language,
// raw content, and modification time. BodyHTML is left empty so callers can
// render lazily.
func BuildDocument(path string, language string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		Language:     language,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title        string         `yaml:"title"`
	Slug         string         `yaml:"slug"`
	Servings     int            `yaml:"servings"`
	PrepMinutes  int            `yaml:"prep_minutes"`
	CookMinutes  int            `yaml:"cook_minutes"`
	TotalMinutes int            `yaml:"total_minutes"`
	Author       string         `yaml:"author"`
	SourceURL    string         `yaml:"source_url"`
	Language     string         `yaml:"language"`
	ImageURL     string         `yaml:"image_url"`
	Tags         []string       `yaml:"tags"`
	Ingredients  []string       `yaml:"ingredients"`
	Date         time.Time      `yaml:"date"`
	Draft        bool           `yaml:"draft"`
	Custom       map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+10)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Servings > 0 {
		raw["servings"] = env.Servings
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if env.SourceURL != "" {
		raw["source_url"] = env.SourceURL
	}
	if env.Language != "" {
		raw["language"] = env.Language
	}
	if env.ImageURL != "" {
		raw["image_url"] = env.ImageURL
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if len(env.Ingredients) > 0 {
		raw["ingredients"] = append([]string(nil), env.Ingredients...)
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:        env.Title,
		Slug:         env.Slug,
		Servings:     env.Servings,
		PrepMinutes:  env.PrepMinutes,
		CookMinutes:  env.CookMinutes,
		TotalMinutes: env.TotalMinutes,
		Author:       env.Author,
		SourceURL:    env.SourceURL,
		Language:     env.Language,
		ImageURL:     env.ImageURL,
		Tags:         append([]string(nil), env.Tags...),
		Ingredients:  append([]string(nil), env.Ingredients...),
		Date:         env.Date,
		Draft:        env.Draft,
		Custom:       cloneMap(env.Custom),
		Raw:          raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
