package units

import "regexp"

// Rule describes a single imperial-to-metric conversion family. Each rule owns
// its pattern so passes never interact: a token rewritten by one family cannot
// be re-matched by another, because every pattern requires its own unit word.
type Rule struct {
	// Name identifies the unit family (diagnostics only).
	Name string
	// Pattern matches `<amount> <unit-word>` with the amount captured in group
	// one. Unit words are whole words, case-insensitive, with optional
	// whitespace between amount and unit.
	Pattern *regexp.Regexp
	// Formula converts the parsed imperial amount into the metric value.
	Formula func(amount float64) float64
	// Unit is the metric unit emitted after the converted value.
	Unit string
	// PromoteAt re-expresses the converted value in PromoteUnit once it meets
	// the threshold (value/1000, one decimal). Zero disables promotion.
	PromoteAt   float64
	PromoteUnit string
}

// amountPattern accepts integers ("2"), decimals ("1.5") and vulgar fractions
// with optional spaces around the slash ("1/2", "1 / 2").
const amountPattern = `(\d+(?:\.\d+)?(?:\s*/\s*\d+(?:\.\d+)?)?)`

func linear(factor float64) func(float64) float64 {
	return func(amount float64) float64 { return amount * factor }
}

func unitExpr(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + amountPattern + `\s*(?:` + words + `)\b`)
}

// DefaultRules is the fixed, immutable conversion table. Order matters only
// where unit words overlap: "fl oz" and "fluid ounce" run before the plain
// ounce family so weight conversion never claims fluid measurements.
var DefaultRules = []Rule{
	{
		Name:    "cups",
		Pattern: unitExpr(`cups?`),
		Formula: linear(240),
		Unit:    "ml",

		PromoteAt:   1000,
		PromoteUnit: "l",
	},
	{
		Name:        "tablespoons",
		Pattern:     unitExpr(`tablespoons?|tbsp`),
		Formula:     linear(15),
		Unit:        "ml",
		PromoteAt:   1000,
		PromoteUnit: "l",
	},
	{
		Name:        "teaspoons",
		Pattern:     unitExpr(`teaspoons?|tsp`),
		Formula:     linear(5),
		Unit:        "ml",
		PromoteAt:   1000,
		PromoteUnit: "l",
	},
	{
		Name:        "fluid-ounces",
		Pattern:     unitExpr(`fluid\s+ounces?|fl\s*\.?\s*oz`),
		Formula:     linear(30),
		Unit:        "ml",
		PromoteAt:   1000,
		PromoteUnit: "l",
	},
	{
		Name:        "ounces",
		Pattern:     unitExpr(`ounces?|oz`),
		Formula:     linear(28),
		Unit:        "g",
		PromoteAt:   1000,
		PromoteUnit: "kg",
	},
	{
		Name:        "pounds",
		Pattern:     unitExpr(`pounds?|lbs?`),
		Formula:     linear(454),
		Unit:        "g",
		PromoteAt:   1000,
		PromoteUnit: "kg",
	},
	{
		Name:    "fahrenheit",
		Pattern: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:°\s*f|degrees\s+fahrenheit|fahrenheit)\b`),
		Formula: func(f float64) float64 { return (f - 32) * 5 / 9 },
		Unit:    "°C",
	},
}
