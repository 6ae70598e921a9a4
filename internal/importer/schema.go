package importer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recipeSchema is the structural contract a JSON-LD node must satisfy
// before it is trusted as a recipe. It deliberately stays loose on the
// fields schema.org publishers get creative with (image, author, yield).
const recipeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "recipeIngredient": {
      "anyOf": [
        {"type": "string", "minLength": 1},
        {"type": "array", "items": {"type": "string"}, "minItems": 1}
      ]
    },
    "prepTime": {"type": "string"},
    "cookTime": {"type": "string"},
    "totalTime": {"type": "string"}
  },
  "required": ["name", "recipeIngredient"]
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateRecipePayload checks a decoded JSON-LD node against the recipe
// schema. Validation failures are flattened into a single error.
func ValidateRecipePayload(node map[string]any) error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("recipe.json", strings.NewReader(recipeSchema)); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("recipe.json")
	})
	if compileErr != nil {
		return fmt.Errorf("importer: compile recipe schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(any(node)); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("importer: invalid recipe payload: %s", flattenIssues(validationErr))
		}
		return fmt.Errorf("importer: invalid recipe payload: %w", err)
	}
	return nil
}

func flattenIssues(err *jsonschema.ValidationError) string {
	if err == nil {
		return ""
	}
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "/"
			}
			issues = append(issues, location+": "+strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(issues, "; ")
}
