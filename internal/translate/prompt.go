package translate

import "strings"

// BuildPrompt renders the translation prompt template, substituting the
// {language} and {recipe_text} placeholders.
func BuildPrompt(template, language, recipeText string) string {
	out := strings.ReplaceAll(template, "{language}", language)
	out = strings.ReplaceAll(out, "{recipe_text}", recipeText)
	return out
}
