package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-recipes/internal/catalog"
	"github.com/goliatone/go-recipes/internal/logging"
	"github.com/goliatone/go-recipes/internal/settings"
	"github.com/goliatone/go-recipes/internal/units"
	"github.com/goliatone/go-recipes/pkg/interfaces"
)

const (
	fetchTimeout = 30 * time.Second
	// Some publishers block the default Go user agent outright.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// HTTPDoer abstracts the HTTP client for tests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options tune a single import.
type Options struct {
	// ConvertUnits rewrites imperial measurements to metric while keeping
	// the original in parentheses. Conversion happens here, once, never on
	// read.
	ConvertUnits bool
	// DryRun parses and formats but does not store.
	DryRun bool
	// UpdateExisting replaces a recipe that already has the derived slug
	// instead of failing.
	UpdateExisting bool
	Tags           []string
}

// Service imports recipes from web pages into the catalog.
type Service struct {
	client    HTTPDoer
	catalog   *catalog.Service
	settings  *settings.Service
	converter *units.Converter
	logger    interfaces.Logger
}

// Option customizes Service construction.
type Option func(*Service)

func WithHTTPClient(client HTTPDoer) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(catalogSvc *catalog.Service, settingsSvc *settings.Service, opts ...Option) *Service {
	svc := &Service{
		client:    &http.Client{Timeout: fetchTimeout},
		catalog:   catalogSvc,
		settings:  settingsSvc,
		converter: units.New(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Scrape fetches a page and mines it for a recipe without storing anything.
func (s *Service) Scrape(ctx context.Context, pageURL string) (*ScrapedRecipe, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, fmt.Errorf("importer: url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("importer: request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	s.attachCookies(ctx, req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("importer: fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("importer: fetch %s: http %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("importer: read %s: %w", pageURL, err)
	}

	recipe, err := ExtractJSONLD(string(body))
	if err != nil {
		return nil, err
	}
	if recipe.URL == "" {
		recipe.URL = pageURL
	}
	return recipe, nil
}

// ImportFromURL scrapes a page and stores the result as a catalog recipe.
// With DryRun set, the assembled recipe is returned without persisting.
func (s *Service) ImportFromURL(ctx context.Context, pageURL string, opts Options) (*catalog.Recipe, error) {
	scraped, err := s.Scrape(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if opts.ConvertUnits {
		s.convertScraped(scraped)
	}

	content := FormatMarkdown(scraped)
	sourceURL := scraped.URL

	req := catalog.CreateRecipeRequest{
		Title:        scraped.Title,
		Content:      content,
		Ingredients:  scraped.Ingredients,
		Instructions: scraped.Instructions,
		PrepMinutes:  scraped.PrepMinutes,
		CookMinutes:  scraped.CookMinutes,
		TotalMinutes: scraped.TotalMinutes,
		Servings:     parseServings(scraped.Yield),
		SourceURL:    &sourceURL,
		Tags:         opts.Tags,
	}
	if scraped.Author != "" {
		author := scraped.Author
		req.Author = &author
	}
	if scraped.Image != "" {
		image := scraped.Image
		req.ImageURL = &image
	}

	if opts.DryRun {
		return &catalog.Recipe{
			Title:        req.Title,
			Content:      req.Content,
			Ingredients:  req.Ingredients,
			Instructions: req.Instructions,
			PrepMinutes:  req.PrepMinutes,
			CookMinutes:  req.CookMinutes,
			TotalMinutes: req.TotalMinutes,
			Servings:     req.Servings,
			Author:       req.Author,
			ImageURL:     req.ImageURL,
			SourceURL:    req.SourceURL,
			Tags:         req.Tags,
		}, nil
	}

	created, err := s.catalog.Create(ctx, req)
	if err == nil {
		s.logger.Info("recipe imported", "slug", created.Slug, "source", pageURL)
		return created, nil
	}
	if !opts.UpdateExisting {
		return nil, err
	}

	existing, lookupErr := s.catalog.GetBySlug(ctx, slugFromError(err, req.Title))
	if lookupErr != nil {
		return nil, err
	}
	updated, err := s.catalog.Update(ctx, catalog.UpdateRecipeRequest{
		ID:           existing.ID,
		Title:        &req.Title,
		Content:      &req.Content,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepMinutes:  &req.PrepMinutes,
		CookMinutes:  &req.CookMinutes,
		TotalMinutes: &req.TotalMinutes,
		ImageURL:     req.ImageURL,
		Author:       req.Author,
		SourceURL:    req.SourceURL,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe reimported", "slug", updated.Slug, "source", pageURL)
	return updated, nil
}

func (s *Service) convertScraped(scraped *ScrapedRecipe) {
	for i, line := range scraped.Ingredients {
		scraped.Ingredients[i] = s.converter.ConvertText(line)
	}
	for i, step := range scraped.Instructions {
		scraped.Instructions[i] = s.converter.ConvertText(step)
	}
	scraped.Description = s.converter.ConvertText(scraped.Description)
}

// attachCookies forwards the stored NYT cookie for nytimes.com fetches.
func (s *Service) attachCookies(ctx context.Context, req *http.Request) {
	if s.settings == nil || !strings.Contains(req.URL.Host, "nytimes.com") {
		return
	}
	prefs, err := s.settings.Get(ctx)
	if err != nil || strings.TrimSpace(prefs.ScrapeCookie) == "" {
		return
	}
	req.AddCookie(&http.Cookie{Name: "NYT-S", Value: prefs.ScrapeCookie})
}

// FormatMarkdown renders a scraped recipe as the canonical markdown layout
// stored in the catalog.
func FormatMarkdown(recipe *ScrapedRecipe) string {
	out := make([]string, 0, 16)

	if recipe.Author != "" {
		out = append(out, "**By:** "+recipe.Author, "")
	}
	if recipe.Description != "" {
		out = append(out, recipe.Description, "")
	}
	if recipe.Yield != "" {
		out = append(out, "**Yield:** "+recipe.Yield, "")
	}

	timeInfo := make([]string, 0, 3)
	if recipe.PrepMinutes > 0 {
		timeInfo = append(timeInfo, "Prep: "+HumanDuration(recipe.PrepMinutes))
	}
	if recipe.CookMinutes > 0 {
		timeInfo = append(timeInfo, "Cook: "+HumanDuration(recipe.CookMinutes))
	}
	if recipe.TotalMinutes > 0 {
		timeInfo = append(timeInfo, "Total: "+HumanDuration(recipe.TotalMinutes))
	}
	if len(timeInfo) > 0 {
		out = append(out, "**Time:** "+strings.Join(timeInfo, ", "), "")
	}

	out = append(out, "## Ingredients", "")
	for _, ingredient := range recipe.Ingredients {
		out = append(out, "- "+ingredient)
	}
	out = append(out, "")

	out = append(out, "## Instructions", "")
	for _, instruction := range recipe.Instructions {
		out = append(out, instruction, "")
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

var leadingNumber = regexp.MustCompile(`\d+`)

// parseServings pulls the first number out of a schema.org recipeYield
// string. Missing or unparseable yields default to 1.
func parseServings(yield string) int {
	match := leadingNumber.FindString(yield)
	if match == "" {
		return 1
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// slugFromError recovers the conflicting slug from a duplicate-slug error,
// falling back to deriving it from the title.
func slugFromError(err error, title string) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		candidate := strings.TrimSpace(msg[idx+2:])
		if candidate != "" && !strings.Contains(candidate, " ") {
			return candidate
		}
	}
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
}
