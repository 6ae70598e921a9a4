package units

import (
	"math"
	"strconv"
	"strings"
)

// Converter rewrites imperial measurements in free text to their metric
// equivalents, keeping the original token parenthetically for reference:
//
//	"2 cups flour" -> "480ml (2 cups) flour"
//
// The zero value is not usable; construct instances with New. Converters are
// immutable and safe for concurrent use.
type Converter struct {
	rules []Rule
}

// New returns a converter backed by the default conversion table.
func New() *Converter {
	return &Converter{rules: DefaultRules}
}

// NewWithRules returns a converter using a custom rule table. The slice is not
// copied; callers must not mutate it afterwards.
func NewWithRules(rules []Rule) *Converter {
	return &Converter{rules: rules}
}

// ConvertText applies every conversion family to the input as independent
// substitution passes. Text without recognized measurements is returned
// unchanged. Tokens whose amount fails to parse are left as-is; user-entered
// text never produces an error.
func (c *Converter) ConvertText(text string) string {
	if text == "" {
		return text
	}
	for _, rule := range c.rules {
		text = rule.Pattern.ReplaceAllStringFunc(text, func(match string) string {
			sub := rule.Pattern.FindStringSubmatch(match)
			if len(sub) < 2 {
				return match
			}
			amount, ok := parseAmount(sub[1])
			if !ok {
				return match
			}
			return formatConversion(rule, amount, match)
		})
	}
	return text
}

// formatConversion renders the converted value followed by the original token
// in parentheses. Values meeting the rule's promotion threshold are
// re-expressed in the larger unit with one decimal.
func formatConversion(rule Rule, amount float64, original string) string {
	converted := math.Round(rule.Formula(amount))

	value := strconv.FormatFloat(converted, 'f', -1, 64)
	unit := rule.Unit
	if rule.PromoteAt > 0 && converted >= rule.PromoteAt {
		promoted := math.Round(converted/100) / 10
		value = strconv.FormatFloat(promoted, 'f', -1, 64)
		unit = rule.PromoteUnit
	}

	return value + unit + " (" + strings.TrimSpace(original) + ")"
}

// parseAmount evaluates integers, decimals and vulgar fractions. A zero
// denominator reports failure so the caller can leave the token untouched.
func parseAmount(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if num, den, ok := strings.Cut(token, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
