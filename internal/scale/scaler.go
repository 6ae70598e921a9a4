// Package scale rewrites numeric quantities in ingredient lines when a recipe
// is prepared for a different number of servings. The scaler is pure text
// processing: no I/O, no shared state, safe for concurrent use.
package scale

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// quantityPattern matches vulgar fractions first (optionally spaced around the
// slash) so "1 / 2" is consumed as one token, then plain decimals or integers.
var quantityPattern = regexp.MustCompile(`\d+\s*/\s*\d+|\d+(?:\.\d+)?`)

// ScaleIngredients multiplies every numeric token in the supplied ingredient
// lines by factor and re-renders it as a clean decimal: round half-up to two
// places, trailing zeros stripped ("2", not "2.00"). Fractions are evaluated
// before scaling and emitted as decimals. Lines without numeric tokens are
// returned unchanged.
//
// A factor of exactly 1 short-circuits and returns the input slice untouched,
// preserving the original formatting of every line.
//
// Callers own the precondition that factor is positive; the scaler applies
// whatever arithmetic the factor implies. Serving counts are clamped by the
// caller, never here.
func ScaleIngredients(ingredients []string, factor float64) []string {
	if factor == 1 || len(ingredients) == 0 {
		return ingredients
	}

	multiplier := decimal.NewFromFloat(factor)
	scaled := make([]string, len(ingredients))
	for i, line := range ingredients {
		scaled[i] = scaleLine(line, multiplier)
	}
	return scaled
}

// ScaleLine rewrites a single ingredient line. Exposed for callers that
// process lines incrementally (e.g. shopping list assembly).
func ScaleLine(line string, factor float64) string {
	if factor == 1 {
		return line
	}
	return scaleLine(line, decimal.NewFromFloat(factor))
}

func scaleLine(line string, multiplier decimal.Decimal) string {
	return quantityPattern.ReplaceAllStringFunc(line, func(token string) string {
		value, ok := parseQuantity(token)
		if !ok {
			// Defensive: the pattern should always parse, but a malformed
			// token is left as the literal matched text rather than raising.
			return token
		}
		return value.Mul(multiplier).Round(2).String()
	})
}

func parseQuantity(token string) (decimal.Decimal, bool) {
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, err := decimal.NewFromString(strings.TrimSpace(num))
		if err != nil {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(strings.TrimSpace(den))
		if err != nil || d.IsZero() {
			return decimal.Decimal{}, false
		}
		return n.Div(d), true
	}
	value, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}
