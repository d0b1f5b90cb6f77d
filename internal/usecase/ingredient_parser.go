package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chef/backend/internal/domain"
)

// Compiled regex patterns for ingredient line parsing
var (
	// Integer, decimal, fraction ("1/2") or mixed number ("1 1/2")
	quantityPattern = `\d+(?:[./]\d+)?(?:\s+\d+/\d+)?`

	// Unit vocabulary, including abbreviations and plurals. Order matters only
	// for readability; a unit must be followed by whitespace to count.
	unitPattern = `cups?|teaspoons?|tsps?\.?|tablespoons?|tbsps?\.?|ounces?|oz\.?|pounds?|lbs?\.?|` +
		`grams?|g\.?|kilograms?|kgs?\.?|milliliters?|ml\.?|liters?|litres?|l\.?|` +
		`large|small|medium|bunch(?:es)?|cloves?|slices?|pieces?|cans?|jars?|bottles?|` +
		`pkgs?\.?|packs?|packages?|bags?|box(?:es)?|pinch(?:es)?|dash(?:es)?`

	// Matches "<quantity>? <unit>? <item>" on a normalized line
	ingredientLinePattern = regexp.MustCompile(
		`^(?:(` + quantityPattern + `)\s*)?(?:(` + unitPattern + `)\s+)?(.+)$`,
	)

	// Matches a remainder that is nothing but a unit token ("2 cups" leaves "cups")
	bareUnitPattern = regexp.MustCompile(`^(?:` + unitPattern + `)$`)

	// A line that is only a number ("250", "1/2", "1 1/2")
	quantityOnlyPattern = regexp.MustCompile(`^` + quantityPattern + `$`)

	// Remainder made of digits and separators, left when the regex splits a number
	numericRemainderPattern = regexp.MustCompile(`^[\d./\s]+$`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// normalizeIngredient trims, lowercases and collapses internal whitespace.
func normalizeIngredient(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	return multiSpacePattern.ReplaceAllString(text, " ")
}

// ParseIngredient splits a free-text ingredient line into quantity, unit and item name.
//
// Examples:
//   - "2 cups milk"         -> 2, "cups", "milk"
//   - "1/2 tsp salt"        -> 0.5, "tsp", "salt"
//   - "1 1/2 cups flour"    -> 1.5, "cups", "flour"
//   - "salt"                -> 1, "", "salt"
//
// A line without a leading quantity counts as one of the item.
func ParseIngredient(raw string) domain.ParsedIngredient {
	text := normalizeIngredient(raw)
	parsed := domain.ParsedIngredient{
		Quantity: 1,
		Item:     text,
		Original: text,
	}

	if quantityOnlyPattern.MatchString(text) {
		parsed.Quantity = parseQuantity(text)
		return parsed
	}

	match := ingredientLinePattern.FindStringSubmatch(text)
	if match == nil {
		return parsed
	}

	qty, unit, item := match[1], match[2], strings.TrimSpace(match[3])
	if qty != "" {
		parsed.Quantity = parseQuantity(qty)
	}
	parsed.Unit = strings.TrimSuffix(unit, ".")

	// "2 cups" would otherwise leave "cups" as the item
	if item == "" || bareUnitPattern.MatchString(item) || numericRemainderPattern.MatchString(item) {
		parsed.Item = text
		return parsed
	}
	parsed.Item = item
	return parsed
}

// ExtractItemName strips a leading quantity and unit from an ingredient line.
// If nothing but a quantity remains the normalized line is returned unchanged.
func ExtractItemName(raw string) string {
	return ParseIngredient(raw).Item
}

// parseQuantity converts "2", "1.5", "1/2" or "1 1/2" to a float.
// A zero denominator yields 0.
func parseQuantity(s string) float64 {
	total := 0.0
	for _, part := range strings.Fields(s) {
		if num, den, ok := strings.Cut(part, "/"); ok {
			n, errN := strconv.ParseFloat(num, 64)
			d, errD := strconv.ParseFloat(den, 64)
			if errN != nil || errD != nil || d == 0 {
				return 0
			}
			total += n / d
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0
		}
		total += v
	}
	return total
}
