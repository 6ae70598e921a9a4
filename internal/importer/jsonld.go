// Package importer pulls recipes from the web. Pages are mined for JSON-LD
// structured data (schema.org Recipe), validated, rendered to canonical
// markdown, and stored in the catalog with measurements converted to metric
// exactly once.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoRecipeData indicates the page carried no usable schema.org Recipe
// payload.
var ErrNoRecipeData = errors.New("importer: no recipe data found on page")

// ScrapedRecipe is the normalized result of mining a page.
type ScrapedRecipe struct {
	Title        string
	Description  string
	Yield        string
	PrepMinutes  int
	CookMinutes  int
	TotalMinutes int
	Ingredients  []string
	Instructions []string
	Author       string
	URL          string
	Image        string
}

var jsonLDPattern = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// ExtractJSONLD scans an HTML document for JSON-LD blocks and returns the
// first schema.org Recipe found. Arrays and @graph containers are searched
// recursively.
func ExtractJSONLD(html string) (*ScrapedRecipe, error) {
	for _, match := range jsonLDPattern.FindAllStringSubmatch(html, -1) {
		var payload any
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &payload); err != nil {
			continue
		}
		if node := findRecipeNode(payload); node != nil {
			recipe, err := parseRecipeNode(node)
			if err != nil {
				continue
			}
			return recipe, nil
		}
	}
	return nil, ErrNoRecipeData
}

func findRecipeNode(payload any) map[string]any {
	switch value := payload.(type) {
	case map[string]any:
		if isRecipeType(value["@type"]) {
			return value
		}
		if graph, ok := value["@graph"]; ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range value {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

func isRecipeType(raw any) bool {
	switch value := raw.(type) {
	case string:
		return value == "Recipe"
	case []any:
		for _, item := range value {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func parseRecipeNode(node map[string]any) (*ScrapedRecipe, error) {
	if err := ValidateRecipePayload(node); err != nil {
		return nil, err
	}

	recipe := &ScrapedRecipe{
		Title:        stringField(node["name"]),
		Description:  stringField(node["description"]),
		Yield:        yieldField(node["recipeYield"]),
		PrepMinutes:  ParseISODurationMinutes(stringField(node["prepTime"])),
		CookMinutes:  ParseISODurationMinutes(stringField(node["cookTime"])),
		TotalMinutes: ParseISODurationMinutes(stringField(node["totalTime"])),
		Ingredients:  stringList(node["recipeIngredient"]),
		URL:          stringField(node["url"]),
		Image:        imageField(node["image"]),
		Author:       authorField(node["author"]),
	}

	for idx, step := range instructionList(node["recipeInstructions"]) {
		recipe.Instructions = append(recipe.Instructions, fmt.Sprintf("%d. %s", idx+1, step))
	}
	return recipe, nil
}

func stringField(raw any) string {
	s, _ := raw.(string)
	return strings.TrimSpace(s)
}

func yieldField(raw any) string {
	switch value := raw.(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return fmt.Sprintf("%d", int(value))
	case []any:
		for _, item := range value {
			if s := yieldField(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func stringList(raw any) []string {
	switch value := raw.(type) {
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return []string{strings.TrimSpace(value)}
	}
	return nil
}

func instructionList(raw any) []string {
	switch value := raw.(type) {
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			switch step := item.(type) {
			case map[string]any:
				// HowToSection nests its steps under itemListElement.
				if nested, ok := step["itemListElement"]; ok {
					out = append(out, instructionList(nested)...)
					continue
				}
				if text := stringField(step["text"]); text != "" {
					out = append(out, text)
				}
			case string:
				if strings.TrimSpace(step) != "" {
					out = append(out, strings.TrimSpace(step))
				}
			}
		}
		return out
	case string:
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return []string{strings.TrimSpace(value)}
	}
	return nil
}

func imageField(raw any) string {
	switch value := raw.(type) {
	case string:
		return strings.TrimSpace(value)
	case map[string]any:
		return stringField(value["url"])
	case []any:
		for _, item := range value {
			if s := imageField(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func authorField(raw any) string {
	switch value := raw.(type) {
	case string:
		return strings.TrimSpace(value)
	case map[string]any:
		return stringField(value["name"])
	case []any:
		for _, item := range value {
			if s := authorField(item); s != "" {
				return s
			}
		}
	}
	return ""
}
